package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/workplacehq/workplace/config"
	"github.com/workplacehq/workplace/internal/database"
	"github.com/workplacehq/workplace/internal/domain"
	pkgdatabase "github.com/workplacehq/workplace/pkg/database"
)

type workplaceRepository struct {
	systemDB    *sql.DB
	dbConfig    *config.DatabaseConfig
	provisioner database.Provisioner
}

// NewWorkplaceRepository creates a new PostgreSQL workplace repository.
// The provisioner decides where tenant databases physically live; routing to
// them goes through the shared connection manager.
func NewWorkplaceRepository(systemDB *sql.DB, dbConfig *config.DatabaseConfig, provisioner database.Provisioner) domain.WorkplaceRepository {
	return &workplaceRepository{
		systemDB:    systemDB,
		dbConfig:    dbConfig,
		provisioner: provisioner,
	}
}

// checkWorkplaceIDExists checks if a workplace with the given ID already exists
func (r *workplaceRepository) checkWorkplaceIDExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM workplaces WHERE id = $1)`
	err := r.systemDB.QueryRowContext(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check workplace ID existence: %w", err)
	}
	return exists, nil
}

func (r *workplaceRepository) Create(ctx context.Context, workplace *domain.Workplace) error {
	if err := workplace.Validate(); err != nil {
		return err
	}

	// Check if workplace ID already exists
	exists, err := r.checkWorkplaceIDExists(ctx, workplace.ID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("workplace with ID %s already exists", workplace.ID)
	}

	now := time.Now().UTC()
	workplace.CreatedAt = now
	workplace.UpdatedAt = now

	query := `
		INSERT INTO workplaces (id, name, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = r.systemDB.ExecContext(ctx, query,
		workplace.ID,
		workplace.Name,
		workplace.OwnerID,
		workplace.CreatedAt,
		workplace.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create workplace: %w", err)
	}
	return nil
}

func (r *workplaceRepository) GetByID(ctx context.Context, id string) (*domain.Workplace, error) {
	query := `
		SELECT id, name, owner_id, created_at, updated_at
		FROM workplaces
		WHERE id = $1
	`
	workplace, err := domain.ScanWorkplace(r.systemDB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrWorkplaceNotFound{Message: "workplace not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get workplace: %w", err)
	}
	return workplace, nil
}

func (r *workplaceRepository) List(ctx context.Context) ([]*domain.Workplace, error) {
	query := `
		SELECT id, name, owner_id, created_at, updated_at
		FROM workplaces
		ORDER BY created_at DESC
	`
	rows, err := r.systemDB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list workplaces: %w", err)
	}
	defer rows.Close()

	var workplaces []*domain.Workplace
	for rows.Next() {
		workplace, err := domain.ScanWorkplace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workplace: %w", err)
		}
		workplaces = append(workplaces, workplace)
	}
	return workplaces, rows.Err()
}

func (r *workplaceRepository) Update(ctx context.Context, workplace *domain.Workplace) error {
	if err := workplace.Validate(); err != nil {
		return err
	}

	workplace.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE workplaces
		SET name = $1, updated_at = $2
		WHERE id = $3
	`
	result, err := r.systemDB.ExecContext(ctx, query,
		workplace.Name,
		workplace.UpdatedAt,
		workplace.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update workplace: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrWorkplaceNotFound{Message: "workplace not found"}
	}
	return nil
}

// Delete clears the workplace out of the registry first and drops the
// tenant database last. A failure partway can leave a dangling database
// but never registry rows pointing at one that is already gone.
func (r *workplaceRepository) Delete(ctx context.Context, id string) error {
	deleteMembersQuery := `DELETE FROM workplace_members WHERE workplace_id = $1`
	if _, err := r.systemDB.ExecContext(ctx, deleteMembersQuery, id); err != nil {
		return fmt.Errorf("failed to delete workplace members: %w", err)
	}

	deleteInvitationsQuery := `DELETE FROM workplace_invitations WHERE workplace_id = $1`
	if _, err := r.systemDB.ExecContext(ctx, deleteInvitationsQuery, id); err != nil {
		return fmt.Errorf("failed to delete workplace invitations: %w", err)
	}

	query := `DELETE FROM workplaces WHERE id = $1`
	result, err := r.systemDB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete workplace: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrWorkplaceNotFound{Message: "workplace not found"}
	}

	// Only now that nothing references the tenant database, tear it down
	return r.DeleteDatabase(ctx, id)
}

// GetConnection routes to the workplace's database through the shared
// connection manager.
func (r *workplaceRepository) GetConnection(ctx context.Context, workplaceID string) (*sql.DB, error) {
	manager, err := pkgdatabase.GetConnectionManager()
	if err != nil {
		return nil, err
	}
	return manager.GetWorkplaceConnection(ctx, workplaceID)
}

func (r *workplaceRepository) CreateDatabase(ctx context.Context, workplaceID string) error {
	if err := r.provisioner.Provision(ctx, workplaceID); err != nil {
		return fmt.Errorf("failed to provision workplace database: %w", err)
	}
	return nil
}

func (r *workplaceRepository) DeleteDatabase(ctx context.Context, workplaceID string) error {
	// Close any live pool before dropping the database under it
	if manager, err := pkgdatabase.GetConnectionManager(); err == nil {
		if err := manager.CloseWorkplaceConnection(workplaceID); err != nil {
			return fmt.Errorf("failed to close workplace connection: %w", err)
		}
	}

	if err := r.provisioner.Deprovision(ctx, workplaceID); err != nil {
		return fmt.Errorf("failed to deprovision workplace database: %w", err)
	}
	return nil
}

// WithWorkplaceTransaction runs fn inside a transaction on the workplace's
// database.
func (r *workplaceRepository) WithWorkplaceTransaction(ctx context.Context, workplaceID string, fn func(*sql.Tx) error) error {
	db, err := r.GetConnection(ctx, workplaceID)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("failed to rollback transaction: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *workplaceRepository) AddUserToWorkplace(ctx context.Context, member *domain.WorkplaceMember) error {
	if err := member.Validate(); err != nil {
		return err
	}

	// Adding an existing member is a no-op, so accepting an invitation twice
	// is safe.
	query := `
		INSERT INTO workplace_members (user_id, workplace_id, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, workplace_id) DO NOTHING
	`
	_, err := r.systemDB.ExecContext(ctx, query,
		member.UserID,
		member.WorkplaceID,
		member.Role,
		member.CreatedAt,
		member.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to add user to workplace: %w", err)
	}
	return nil
}

func (r *workplaceRepository) RemoveUserFromWorkplace(ctx context.Context, userID string, workplaceID string) error {
	query := `DELETE FROM workplace_members WHERE user_id = $1 AND workplace_id = $2`
	result, err := r.systemDB.ExecContext(ctx, query, userID, workplaceID)
	if err != nil {
		return fmt.Errorf("failed to remove user from workplace: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user is not a member of the workplace")
	}
	return nil
}

func (r *workplaceRepository) GetUserWorkplaces(ctx context.Context, userID string) ([]*domain.Workplace, error) {
	query := `
		SELECT w.id, w.name, w.owner_id, w.created_at, w.updated_at
		FROM workplaces w
		JOIN workplace_members m ON m.workplace_id = w.id
		WHERE m.user_id = $1
		ORDER BY w.created_at DESC
	`
	rows, err := r.systemDB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user workplaces: %w", err)
	}
	defer rows.Close()

	var workplaces []*domain.Workplace
	for rows.Next() {
		workplace, err := domain.ScanWorkplace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workplace: %w", err)
		}
		workplaces = append(workplaces, workplace)
	}
	return workplaces, rows.Err()
}

// GetWorkplaceMembersWithEmail returns all members of a workplace joined with
// their user records.
func (r *workplaceRepository) GetWorkplaceMembersWithEmail(ctx context.Context, workplaceID string) ([]*domain.WorkplaceMemberDetail, error) {
	query := `
		SELECT m.user_id, m.workplace_id, m.role, m.created_at, m.updated_at, u.email, u.name
		FROM workplace_members m
		JOIN users u ON m.user_id = u.id
		WHERE m.workplace_id = $1
		ORDER BY m.created_at ASC
	`
	rows, err := r.systemDB.QueryContext(ctx, query, workplaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workplace members: %w", err)
	}
	defer rows.Close()

	var members []*domain.WorkplaceMemberDetail
	for rows.Next() {
		var m domain.WorkplaceMemberDetail
		err := rows.Scan(
			&m.UserID,
			&m.WorkplaceID,
			&m.Role,
			&m.CreatedAt,
			&m.UpdatedAt,
			&m.Email,
			&m.Name,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workplace member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workplace members rows: %w", err)
	}

	return members, nil
}

func (r *workplaceRepository) GetUserWorkplace(ctx context.Context, userID string, workplaceID string) (*domain.WorkplaceMember, error) {
	query := `
		SELECT user_id, workplace_id, role, created_at, updated_at
		FROM workplace_members
		WHERE user_id = $1 AND workplace_id = $2
	`
	var m domain.WorkplaceMember
	err := r.systemDB.QueryRowContext(ctx, query, userID, workplaceID).Scan(
		&m.UserID, &m.WorkplaceID, &m.Role, &m.CreatedAt, &m.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user is not a member of the workplace")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get workplace member: %w", err)
	}
	return &m, nil
}

func (r *workplaceRepository) IsUserWorkplaceOwner(ctx context.Context, userID string, workplaceID string) (bool, error) {
	query := `
		SELECT COUNT(*)
		FROM workplace_members
		WHERE user_id = $1 AND workplace_id = $2 AND role = $3
	`
	var count int
	err := r.systemDB.QueryRowContext(ctx, query, userID, workplaceID, domain.MemberRoleOwner).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check workplace ownership: %w", err)
	}
	return count > 0, nil
}

// CreateInvitation creates a new workplace invitation
func (r *workplaceRepository) CreateInvitation(ctx context.Context, invitation *domain.WorkplaceInvitation) error {
	query := `
		INSERT INTO workplace_invitations (id, workplace_id, inviter_id, email, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (workplace_id, email) DO UPDATE
		SET inviter_id = $3, expires_at = $5, updated_at = $7
	`
	_, err := r.systemDB.ExecContext(
		ctx,
		query,
		invitation.ID,
		invitation.WorkplaceID,
		invitation.InviterID,
		invitation.Email,
		invitation.ExpiresAt,
		invitation.CreatedAt,
		invitation.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create invitation: %w", err)
	}
	return nil
}

// GetInvitationByID retrieves a workplace invitation by its ID
func (r *workplaceRepository) GetInvitationByID(ctx context.Context, id string) (*domain.WorkplaceInvitation, error) {
	query := `
		SELECT id, workplace_id, inviter_id, email, expires_at, created_at, updated_at
		FROM workplace_invitations
		WHERE id = $1
	`
	var invitation domain.WorkplaceInvitation
	err := r.systemDB.QueryRowContext(ctx, query, id).Scan(
		&invitation.ID,
		&invitation.WorkplaceID,
		&invitation.InviterID,
		&invitation.Email,
		&invitation.ExpiresAt,
		&invitation.CreatedAt,
		&invitation.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrInvitationNotFound{Message: "invitation not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}
	return &invitation, nil
}

// GetInvitationByEmail retrieves a workplace invitation by workplace ID and email
func (r *workplaceRepository) GetInvitationByEmail(ctx context.Context, workplaceID, email string) (*domain.WorkplaceInvitation, error) {
	query := `
		SELECT id, workplace_id, inviter_id, email, expires_at, created_at, updated_at
		FROM workplace_invitations
		WHERE workplace_id = $1 AND email = $2
		ORDER BY created_at DESC
		LIMIT 1
	`
	var invitation domain.WorkplaceInvitation
	err := r.systemDB.QueryRowContext(ctx, query, workplaceID, email).Scan(
		&invitation.ID,
		&invitation.WorkplaceID,
		&invitation.InviterID,
		&invitation.Email,
		&invitation.ExpiresAt,
		&invitation.CreatedAt,
		&invitation.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrInvitationNotFound{Message: "invitation not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}
	return &invitation, nil
}

func (r *workplaceRepository) DeleteInvitation(ctx context.Context, id string) error {
	query := `DELETE FROM workplace_invitations WHERE id = $1`
	result, err := r.systemDB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete invitation: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrInvitationNotFound{Message: "invitation not found"}
	}
	return nil
}

// EnsureTenantUser mirrors a system user into the workplace's database so
// tenant-side rows can reference it.
func (r *workplaceRepository) EnsureTenantUser(ctx context.Context, workplaceID string, user *domain.User) error {
	db, err := r.GetConnection(ctx, workplaceID)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (id, email, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET email = $2, name = $3, updated_at = $5
	`
	_, err = db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.Name,
		user.CreatedAt,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to ensure tenant user: %w", err)
	}
	return nil
}

func (r *workplaceRepository) RemoveTenantUser(ctx context.Context, workplaceID string, userID string) error {
	db, err := r.GetConnection(ctx, workplaceID)
	if err != nil {
		return err
	}

	query := `DELETE FROM users WHERE id = $1`
	if _, err := db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to remove tenant user: %w", err)
	}
	return nil
}
