package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_auth_repository.go -package mocks github.com/workplacehq/workplace/internal/domain AuthRepository
//go:generate mockgen -destination mocks/mock_auth_service.go -package mocks github.com/workplacehq/workplace/internal/domain AuthService

// AuthRepository defines the interface for auth-related database operations
type AuthRepository interface {
	GetSessionByID(ctx context.Context, sessionID string, userID string) (*time.Time, error)
	GetUserByID(ctx context.Context, userID string) (*User, error)
}

type AuthService interface {
	AuthenticateUserFromContext(ctx context.Context) (*User, error)
	AuthenticateUserForWorkplace(ctx context.Context, workplaceID string) (context.Context, *User, error)
	VerifyUserSession(ctx context.Context, userID, sessionID string) (*User, error)
	GenerateAuthToken(user *User, sessionID string, expiresAt time.Time) string
	GenerateInvitationToken(invitation *WorkplaceInvitation) string
}
