package domain

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_workplace_repository.go -package mocks github.com/workplacehq/workplace/internal/domain WorkplaceRepository
//go:generate mockgen -destination mocks/mock_workplace_service.go -package mocks github.com/workplacehq/workplace/internal/domain WorkplaceServiceInterface

// Workplace is the top-level tenant. Its ID doubles as the discriminator for
// the tenant database, so it is immutable once assigned.
type Workplace struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	OwnerID   string    `json:"owner_id" db:"owner_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func (w *Workplace) Validate() error {
	if w.ID == "" {
		return fmt.Errorf("invalid workplace: id is required")
	}
	if len(w.ID) > 32 {
		return fmt.Errorf("invalid workplace: id length must be between 1 and 32")
	}
	if !govalidator.Matches(w.ID, "^[a-z0-9-]+$") {
		return fmt.Errorf("invalid workplace: id must be lowercase alphanumeric or hyphen")
	}
	if w.Name == "" {
		return fmt.Errorf("invalid workplace: name is required")
	}
	if len(w.Name) > 255 {
		return fmt.Errorf("invalid workplace: name length must be between 1 and 255")
	}
	return nil
}

// ScanWorkplace scans a workplace row from the given scanner
func ScanWorkplace(scanner interface {
	Scan(dest ...interface{}) error
}) (*Workplace, error) {
	var w Workplace
	if err := scanner.Scan(
		&w.ID,
		&w.Name,
		&w.OwnerID,
		&w.CreatedAt,
		&w.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &w, nil
}

type MemberRole string

const (
	MemberRoleOwner  MemberRole = "owner"
	MemberRoleMember MemberRole = "member"
)

// WorkplaceMember associates a user with a workplace. Membership is
// idempotent: adding an existing (user, workplace) pair is a no-op.
type WorkplaceMember struct {
	UserID      string     `json:"user_id" db:"user_id"`
	WorkplaceID string     `json:"workplace_id" db:"workplace_id"`
	Role        MemberRole `json:"role" db:"role"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

func (m *WorkplaceMember) Validate() error {
	if m.UserID == "" {
		return fmt.Errorf("invalid member: user_id is required")
	}
	if m.WorkplaceID == "" {
		return fmt.Errorf("invalid member: workplace_id is required")
	}
	if m.Role != MemberRoleOwner && m.Role != MemberRoleMember {
		return fmt.Errorf("invalid member: role must be owner or member")
	}
	return nil
}

// WorkplaceMemberDetail is a member joined with its user record
type WorkplaceMemberDetail struct {
	WorkplaceMember
	Email string `json:"email" db:"email"`
	Name  string `json:"name" db:"name"`
}

// WorkplaceInvitation represents an invitation to join a workplace
type WorkplaceInvitation struct {
	ID          string    `json:"id" db:"id"`
	WorkplaceID string    `json:"workplace_id" db:"workplace_id"`
	InviterID   string    `json:"inviter_id" db:"inviter_id"`
	Email       string    `json:"email" db:"email"`
	ExpiresAt   time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Request/response types

type CreateWorkplaceRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (r *CreateWorkplaceRequest) Validate() error {
	w := &Workplace{ID: r.ID, Name: r.Name}
	return w.Validate()
}

type UpdateWorkplaceRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (r *UpdateWorkplaceRequest) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("invalid workplace: id is required")
	}
	if r.Name == "" {
		return fmt.Errorf("invalid workplace: name is required")
	}
	return nil
}

type DeleteWorkplaceRequest struct {
	ID string `json:"id"`
}

func (r *DeleteWorkplaceRequest) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("invalid workplace: id is required")
	}
	return nil
}

type InviteMemberRequest struct {
	WorkplaceID string `json:"workplace_id"`
	Email       string `json:"email"`
}

func (r *InviteMemberRequest) Validate() error {
	if r.WorkplaceID == "" {
		return fmt.Errorf("invalid invitation: workplace_id is required")
	}
	if !govalidator.IsEmail(r.Email) {
		return fmt.Errorf("invalid invitation: email is not valid")
	}
	return nil
}

// WorkplaceRepository is the control-plane store of workplaces, members and
// invitations, plus the per-workplace database lifecycle and routing.
type WorkplaceRepository interface {
	Create(ctx context.Context, workplace *Workplace) error
	GetByID(ctx context.Context, id string) (*Workplace, error)
	List(ctx context.Context) ([]*Workplace, error)
	Update(ctx context.Context, workplace *Workplace) error
	Delete(ctx context.Context, id string) error

	AddUserToWorkplace(ctx context.Context, member *WorkplaceMember) error
	RemoveUserFromWorkplace(ctx context.Context, userID string, workplaceID string) error
	GetUserWorkplaces(ctx context.Context, userID string) ([]*Workplace, error)
	GetWorkplaceMembersWithEmail(ctx context.Context, workplaceID string) ([]*WorkplaceMemberDetail, error)
	GetUserWorkplace(ctx context.Context, userID string, workplaceID string) (*WorkplaceMember, error)
	IsUserWorkplaceOwner(ctx context.Context, userID string, workplaceID string) (bool, error)

	CreateInvitation(ctx context.Context, invitation *WorkplaceInvitation) error
	GetInvitationByID(ctx context.Context, id string) (*WorkplaceInvitation, error)
	GetInvitationByEmail(ctx context.Context, workplaceID, email string) (*WorkplaceInvitation, error)
	DeleteInvitation(ctx context.Context, id string) error

	// Tenant database lifecycle and routing
	GetConnection(ctx context.Context, workplaceID string) (*sql.DB, error)
	CreateDatabase(ctx context.Context, workplaceID string) error
	DeleteDatabase(ctx context.Context, workplaceID string) error
	WithWorkplaceTransaction(ctx context.Context, workplaceID string, fn func(*sql.Tx) error) error

	// Tenant user mirror rows
	EnsureTenantUser(ctx context.Context, workplaceID string, user *User) error
	RemoveTenantUser(ctx context.Context, workplaceID string, userID string) error
}

// WorkplaceServiceInterface defines the business operations on workplaces
type WorkplaceServiceInterface interface {
	CreateWorkplace(ctx context.Context, id, name string) (*Workplace, error)
	GetWorkplace(ctx context.Context, id string) (*Workplace, error)
	ListWorkplaces(ctx context.Context) ([]*Workplace, error)
	UpdateWorkplace(ctx context.Context, id, name string) (*Workplace, error)
	DeleteWorkplace(ctx context.Context, id string) error
	LeaveWorkplace(ctx context.Context, workplaceID string) error
	GetMembers(ctx context.Context, workplaceID string) ([]*WorkplaceMemberDetail, error)
	InviteMember(ctx context.Context, workplaceID, email string) (*WorkplaceInvitation, error)
	AcceptInvitation(ctx context.Context, invitationID string) error
	RemoveMember(ctx context.Context, workplaceID, userID string) error
}

// ErrWorkplaceNotFound is returned when a workplace is not found
type ErrWorkplaceNotFound struct {
	Message string
}

func (e *ErrWorkplaceNotFound) Error() string {
	return e.Message
}

// ErrInvitationNotFound is returned when an invitation is not found
type ErrInvitationNotFound struct {
	Message string
}

func (e *ErrInvitationNotFound) Error() string {
	return e.Message
}
