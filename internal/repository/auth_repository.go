package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/workplacehq/workplace/internal/domain"
	"github.com/workplacehq/workplace/pkg/logger"
)

// SQLAuthRepository answers the session and user lookups token
// verification needs. Both live in the system database, so every
// request can be authenticated before any tenant connection is opened.
type SQLAuthRepository struct {
	systemDB *sql.DB
	logger   logger.Logger
}

// NewSQLAuthRepository creates a new SQLAuthRepository
func NewSQLAuthRepository(db *sql.DB, logger logger.Logger) *SQLAuthRepository {
	return &SQLAuthRepository{
		systemDB: db,
		logger:   logger,
	}
}

// GetSessionByID returns the expiry of the session, scoped to userID so
// a stolen session ID cannot be replayed under another user. A miss is
// reported as sql.ErrNoRows for the service layer to translate.
func (r *SQLAuthRepository) GetSessionByID(ctx context.Context, sessionID string, userID string) (*time.Time, error) {
	query := `SELECT expires_at FROM user_sessions WHERE id = $1 AND user_id = $2`

	var expiresAt time.Time
	err := r.systemDB.QueryRowContext(ctx, query, sessionID, userID).Scan(&expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sql.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &expiresAt, nil
}

// GetUserByID loads the authenticated user's identity fields
func (r *SQLAuthRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT id, email, name, created_at FROM users WHERE id = $1`

	var user domain.User
	err := r.systemDB.QueryRowContext(ctx, query, userID).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sql.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}
