package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/workplacehq/workplace/internal/domain"
	"github.com/workplacehq/workplace/pkg/crypto"
	"github.com/workplacehq/workplace/pkg/logger"
	"github.com/workplacehq/workplace/pkg/mailer"
	"github.com/workplacehq/workplace/pkg/tracing"
)

var (
	ErrInvalidMagicCode = errors.New("invalid or expired code")
)

const (
	magicCodeLength = 6
	magicCodeExpiry = 15 * time.Minute
)

type UserService struct {
	repo          domain.UserRepository
	authService   domain.AuthService
	mailer        mailer.Mailer
	sessionExpiry time.Duration
	secretKey     string
	logger        logger.Logger
	isProduction  bool
	tracer        tracing.Tracer
}

type UserServiceConfig struct {
	Repository    domain.UserRepository
	AuthService   domain.AuthService
	Mailer        mailer.Mailer
	SessionExpiry time.Duration
	SecretKey     string
	Logger        logger.Logger
	IsProduction  bool
	Tracer        tracing.Tracer
}

func NewUserService(cfg UserServiceConfig) *UserService {
	expiry := cfg.SessionExpiry
	if expiry == 0 {
		expiry = 30 * 24 * time.Hour
	}
	return &UserService{
		repo:          cfg.Repository,
		authService:   cfg.AuthService,
		mailer:        cfg.Mailer,
		sessionExpiry: expiry,
		secretKey:     cfg.SecretKey,
		logger:        cfg.Logger,
		isProduction:  cfg.IsProduction,
		tracer:        cfg.Tracer,
	}
}

var _ domain.UserServiceInterface = (*UserService)(nil)

// SignIn starts the magic code flow for an email address. The user row is
// created on first sign-in. In production the code is emailed and the
// returned string is empty; in other environments the code is returned
// directly so local and test setups work without an SMTP server.
func (s *UserService) SignIn(ctx context.Context, input domain.SignInInput) (string, error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "UserService", "SignIn")
	defer func() {
		s.tracer.EndSpan(span, nil)
	}()

	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" {
		return "", domain.NewValidationError("email is required")
	}
	s.tracer.AddAttribute(ctx, "user.email", email)

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		var notFound *domain.ErrUserNotFound
		if !errors.As(err, &notFound) {
			s.tracer.MarkSpanError(ctx, err)
			s.logger.WithField("email", email).Error(fmt.Sprintf("Failed to get user: %v", err))
			return "", fmt.Errorf("failed to get user: %w", err)
		}

		user = &domain.User{
			Email: email,
			Name:  strings.SplitN(email, "@", 2)[0],
		}
		if err := s.repo.CreateUser(ctx, user); err != nil {
			s.tracer.MarkSpanError(ctx, err)
			s.logger.WithField("email", email).Error(fmt.Sprintf("Failed to create user: %v", err))
			return "", fmt.Errorf("failed to create user: %w", err)
		}
	}

	code, err := crypto.GenerateMagicCode(magicCodeLength)
	if err != nil {
		s.tracer.MarkSpanError(ctx, err)
		return "", fmt.Errorf("failed to generate magic code: %w", err)
	}

	codeHash := crypto.HashMagicCode(code, s.secretKey)
	codeExpires := time.Now().UTC().Add(magicCodeExpiry)

	session := &domain.Session{
		UserID:           user.ID,
		ExpiresAt:        time.Now().UTC().Add(s.sessionExpiry),
		MagicCode:        &codeHash,
		MagicCodeExpires: &codeExpires,
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		s.tracer.MarkSpanError(ctx, err)
		s.logger.WithField("user_id", user.ID).Error(fmt.Sprintf("Failed to create session: %v", err))
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	if !s.isProduction {
		s.logger.WithField("email", email).Debug("Magic code returned inline (non-production)")
		return code, nil
	}

	if err := s.mailer.SendMagicCode(email, code); err != nil {
		s.tracer.MarkSpanError(ctx, err)
		s.logger.WithField("email", email).Error(fmt.Sprintf("Failed to send magic code email: %v", err))
		return "", fmt.Errorf("failed to send magic code email: %w", err)
	}

	return "", nil
}

// VerifyCode exchanges a valid magic code for a signed session token.
// The code is stored hashed, so verification recomputes the HMAC and
// compares in constant time.
func (s *UserService) VerifyCode(ctx context.Context, input domain.VerifyCodeInput) (*domain.AuthResponse, error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "UserService", "VerifyCode")
	defer func() {
		s.tracer.EndSpan(span, nil)
	}()

	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" || input.Code == "" {
		return nil, domain.NewValidationError("email and code are required")
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		var notFound *domain.ErrUserNotFound
		if errors.As(err, &notFound) {
			return nil, ErrInvalidMagicCode
		}
		s.tracer.MarkSpanError(ctx, err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	sessions, err := s.repo.GetSessionsByUserID(ctx, user.ID)
	if err != nil {
		s.tracer.MarkSpanError(ctx, err)
		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}

	now := time.Now().UTC()
	var session *domain.Session
	for _, candidate := range sessions {
		if candidate.MagicCode == nil || candidate.MagicCodeExpires == nil {
			continue
		}
		if !crypto.VerifyMagicCode(input.Code, *candidate.MagicCode, s.secretKey) {
			continue
		}
		if now.After(*candidate.MagicCodeExpires) {
			return nil, ErrInvalidMagicCode
		}
		session = candidate
		break
	}
	if session == nil {
		s.logger.WithField("user_id", user.ID).Warn("Magic code verification failed")
		return nil, ErrInvalidMagicCode
	}

	// Consume the code so it cannot be replayed
	session.MagicCode = nil
	session.MagicCodeExpires = nil
	if err := s.repo.UpdateSession(ctx, session); err != nil {
		s.tracer.MarkSpanError(ctx, err)
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	token := s.authService.GenerateAuthToken(user, session.ID, session.ExpiresAt)

	return &domain.AuthResponse{
		Token:     token,
		User:      *user,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// VerifyUserSession checks if the user exists and the session is valid
func (s *UserService) VerifyUserSession(ctx context.Context, userID string, sessionID string) (*domain.User, error) {
	return s.authService.VerifyUserSession(ctx, userID, sessionID)
}

func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.GetUserByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
}

// Logout invalidates every session for the user
func (s *UserService) Logout(ctx context.Context, userID string) error {
	if err := s.repo.DeleteAllSessionsByUserID(ctx, userID); err != nil {
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to delete sessions: %v", err))
		return fmt.Errorf("failed to delete sessions: %w", err)
	}
	return nil
}
