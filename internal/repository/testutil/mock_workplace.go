package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/workplacehq/workplace/internal/domain"
)

// MockWorkplaceRepository is a mock implementation of domain.WorkplaceRepository
// that routes GetConnection to registered in-memory databases.
type MockWorkplaceRepository struct {
	DB           *sql.DB
	WorkplaceDBs map[string]*sql.DB
}

// NewMockWorkplaceRepository creates a new mock workplace repository
func NewMockWorkplaceRepository(db *sql.DB) *MockWorkplaceRepository {
	return &MockWorkplaceRepository{
		DB:           db,
		WorkplaceDBs: make(map[string]*sql.DB),
	}
}

// AddWorkplaceDB adds a workplace database to the mock
func (m *MockWorkplaceRepository) AddWorkplaceDB(workplaceID string, db *sql.DB) {
	m.WorkplaceDBs[workplaceID] = db
}

func (m *MockWorkplaceRepository) GetConnection(ctx context.Context, workplaceID string) (*sql.DB, error) {
	if db, ok := m.WorkplaceDBs[workplaceID]; ok {
		return db, nil
	}
	return nil, fmt.Errorf("workplace %s not found", workplaceID)
}

// WithWorkplaceTransaction runs fn in a transaction on the registered mock
// database for the workplace.
func (m *MockWorkplaceRepository) WithWorkplaceTransaction(ctx context.Context, workplaceID string, fn func(*sql.Tx) error) error {
	db, err := m.GetConnection(ctx, workplaceID)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Implement other required methods with empty implementations
func (m *MockWorkplaceRepository) Create(ctx context.Context, workplace *domain.Workplace) error {
	return nil
}

func (m *MockWorkplaceRepository) GetByID(ctx context.Context, id string) (*domain.Workplace, error) {
	return nil, nil
}

func (m *MockWorkplaceRepository) List(ctx context.Context) ([]*domain.Workplace, error) {
	return nil, nil
}

func (m *MockWorkplaceRepository) Update(ctx context.Context, workplace *domain.Workplace) error {
	return nil
}

func (m *MockWorkplaceRepository) Delete(ctx context.Context, id string) error {
	return nil
}

func (m *MockWorkplaceRepository) AddUserToWorkplace(ctx context.Context, member *domain.WorkplaceMember) error {
	return nil
}

func (m *MockWorkplaceRepository) RemoveUserFromWorkplace(ctx context.Context, userID string, workplaceID string) error {
	return nil
}

func (m *MockWorkplaceRepository) GetUserWorkplaces(ctx context.Context, userID string) ([]*domain.Workplace, error) {
	return nil, nil
}

func (m *MockWorkplaceRepository) GetWorkplaceMembersWithEmail(ctx context.Context, workplaceID string) ([]*domain.WorkplaceMemberDetail, error) {
	return nil, nil
}

func (m *MockWorkplaceRepository) GetUserWorkplace(ctx context.Context, userID string, workplaceID string) (*domain.WorkplaceMember, error) {
	return nil, nil
}

func (m *MockWorkplaceRepository) IsUserWorkplaceOwner(ctx context.Context, userID string, workplaceID string) (bool, error) {
	return false, nil
}

func (m *MockWorkplaceRepository) CreateInvitation(ctx context.Context, invitation *domain.WorkplaceInvitation) error {
	return nil
}

func (m *MockWorkplaceRepository) GetInvitationByID(ctx context.Context, id string) (*domain.WorkplaceInvitation, error) {
	return nil, nil
}

func (m *MockWorkplaceRepository) GetInvitationByEmail(ctx context.Context, workplaceID, email string) (*domain.WorkplaceInvitation, error) {
	return nil, nil
}

func (m *MockWorkplaceRepository) DeleteInvitation(ctx context.Context, id string) error {
	return nil
}

func (m *MockWorkplaceRepository) CreateDatabase(ctx context.Context, workplaceID string) error {
	return nil
}

func (m *MockWorkplaceRepository) DeleteDatabase(ctx context.Context, workplaceID string) error {
	return nil
}

func (m *MockWorkplaceRepository) EnsureTenantUser(ctx context.Context, workplaceID string, user *domain.User) error {
	return nil
}

func (m *MockWorkplaceRepository) RemoveTenantUser(ctx context.Context, workplaceID string, userID string) error {
	return nil
}
