package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/workplacehq/workplace/internal/domain"
	"github.com/workplacehq/workplace/pkg/logger"
)

var (
	ErrSessionExpired = errors.New("session expired")
	ErrUserNotFound   = errors.New("user not found")
)

type AuthService struct {
	repo          domain.AuthRepository
	workplaceRepo domain.WorkplaceRepository
	logger        logger.Logger
	secretKey     []byte
}

type AuthServiceConfig struct {
	Repository          domain.AuthRepository
	WorkplaceRepository domain.WorkplaceRepository
	SecretKey           string
	Logger              logger.Logger
}

func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		repo:          cfg.Repository,
		workplaceRepo: cfg.WorkplaceRepository,
		logger:        cfg.Logger,
		secretKey:     []byte(cfg.SecretKey),
	}
}

// AuthenticateUserFromContext resolves the authenticated user from the
// user and session IDs the auth middleware placed in the context.
func (s *AuthService) AuthenticateUserFromContext(ctx context.Context) (*domain.User, error) {
	userID, ok := ctx.Value(domain.UserIDKey).(string)
	if !ok || userID == "" {
		return nil, ErrUserNotFound
	}
	sessionID, ok := ctx.Value(domain.SessionIDKey).(string)
	if !ok || sessionID == "" {
		return nil, ErrUserNotFound
	}
	return s.VerifyUserSession(ctx, userID, sessionID)
}

// AuthenticateUserForWorkplace checks if the user exists and the session is valid for a specific workplace
func (s *AuthService) AuthenticateUserForWorkplace(ctx context.Context, workplaceID string) (context.Context, *domain.User, error) {
	// Check if user is already set in context for this workplace
	if workplaceUser, ok := ctx.Value(domain.WorkplaceUserKey(workplaceID)).(*domain.User); ok && workplaceUser != nil {
		return ctx, workplaceUser, nil
	}

	user, err := s.AuthenticateUserFromContext(ctx)
	if err != nil {
		return ctx, nil, err
	}

	_, err = s.workplaceRepo.GetUserWorkplace(ctx, user.ID, workplaceID)
	if err != nil {
		return ctx, nil, err
	}

	// Store user in context for future calls - return the new context to the caller
	newCtx := context.WithValue(ctx, domain.WorkplaceUserKey(workplaceID), user)
	return newCtx, user, nil
}

// VerifyUserSession checks if the user exists and the session is valid
func (s *AuthService) VerifyUserSession(ctx context.Context, userID, sessionID string) (*domain.User, error) {
	expiresAt, err := s.repo.GetSessionByID(ctx, sessionID, userID)
	if err == sql.ErrNoRows {
		s.logger.WithField("user_id", userID).WithField("session_id", sessionID).Error("Session not found")
		return nil, ErrSessionExpired
	}
	if err != nil {
		s.logger.WithField("user_id", userID).WithField("session_id", sessionID).WithField("error", err.Error()).Error("Failed to query session")
		return nil, err
	}

	if time.Now().After(*expiresAt) {
		return nil, ErrSessionExpired
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		s.logger.WithField("user_id", userID).WithField("error", err.Error()).Error("Failed to query user")
		return nil, err
	}

	return user, nil
}

// GenerateAuthToken signs a session token for the user
func (s *AuthService) GenerateAuthToken(user *domain.User, sessionID string, expiresAt time.Time) string {
	claims := jwt.MapClaims{
		"user_id":    user.ID,
		"email":      user.Email,
		"session_id": sessionID,
		"iat":        time.Now().Unix(),
		"exp":        expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		// Signing with an HMAC key cannot fail with valid claims
		s.logger.WithField("error", err.Error()).Error("Failed to sign auth token")
		return ""
	}
	return signed
}

// GenerateInvitationToken signs a token carrying the invitation identity,
// embedded in the invitation email link.
func (s *AuthService) GenerateInvitationToken(invitation *domain.WorkplaceInvitation) string {
	claims := jwt.MapClaims{
		"invitation_id": invitation.ID,
		"workplace_id":  invitation.WorkplaceID,
		"email":         invitation.Email,
		"iat":           time.Now().Unix(),
		"exp":           invitation.ExpiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		s.logger.WithField("error", err.Error()).Error("Failed to sign invitation token")
		return ""
	}
	return signed
}

// AuthTokenClaims is the decoded payload of a session token
type AuthTokenClaims struct {
	UserID    string
	Email     string
	SessionID string
}

// VerifyAuthToken parses and validates a session token
func (s *AuthService) VerifyAuthToken(tokenString string) (*AuthTokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected token signing method")
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	userID, _ := claims["user_id"].(string)
	email, _ := claims["email"].(string)
	sessionID, _ := claims["session_id"].(string)
	if userID == "" || sessionID == "" {
		return nil, errors.New("invalid token claims")
	}

	return &AuthTokenClaims{
		UserID:    userID,
		Email:     email,
		SessionID: sessionID,
	}, nil
}

// InvitationTokenClaims is the decoded payload of an invitation token
type InvitationTokenClaims struct {
	InvitationID string
	WorkplaceID  string
	Email        string
}

// VerifyInvitationToken parses and validates an invitation token
func (s *AuthService) VerifyInvitationToken(tokenString string) (*InvitationTokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected token signing method")
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	invitationID, _ := claims["invitation_id"].(string)
	workplaceID, _ := claims["workplace_id"].(string)
	email, _ := claims["email"].(string)
	if invitationID == "" || workplaceID == "" {
		return nil, errors.New("invalid token claims")
	}

	return &InvitationTokenClaims{
		InvitationID: invitationID,
		WorkplaceID:  workplaceID,
		Email:        email,
	}, nil
}
