package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/workplacehq/workplace/internal/domain"
	"github.com/workplacehq/workplace/pkg/logger"
	"github.com/workplacehq/workplace/pkg/mailer"
	"github.com/workplacehq/workplace/pkg/tracing"
)

var (
	ErrNotWorkplaceOwner  = errors.New("user is not the workplace owner")
	ErrOwnerCannotLeave   = errors.New("the owner cannot leave the workplace")
	ErrInvitationExpired  = errors.New("invitation has expired")
	ErrInvitationMismatch = errors.New("invitation was issued for a different email")
)

const invitationExpiry = 7 * 24 * time.Hour

type WorkplaceService struct {
	repo        domain.WorkplaceRepository
	userRepo    domain.UserRepository
	authService domain.AuthService
	mailer      mailer.Mailer
	logger      logger.Logger
	tracer      tracing.Tracer
}

type WorkplaceServiceConfig struct {
	Repository     domain.WorkplaceRepository
	UserRepository domain.UserRepository
	AuthService    domain.AuthService
	Mailer         mailer.Mailer
	Logger         logger.Logger
	Tracer         tracing.Tracer
}

func NewWorkplaceService(cfg WorkplaceServiceConfig) *WorkplaceService {
	return &WorkplaceService{
		repo:        cfg.Repository,
		userRepo:    cfg.UserRepository,
		authService: cfg.AuthService,
		mailer:      cfg.Mailer,
		logger:      cfg.Logger,
		tracer:      cfg.Tracer,
	}
}

var _ domain.WorkplaceServiceInterface = (*WorkplaceService)(nil)

// CreateWorkplace registers the workplace, makes the caller its owner,
// provisions the tenant database and mirrors the owner into it. If
// provisioning fails the registry rows are rolled back so a retry with the
// same ID is possible.
func (s *WorkplaceService) CreateWorkplace(ctx context.Context, id, name string) (*domain.Workplace, error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "WorkplaceService", "CreateWorkplace")
	defer func() {
		s.tracer.EndSpan(span, nil)
	}()
	s.tracer.AddAttribute(ctx, "workplace.id", id)

	user, err := s.authService.AuthenticateUserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	workplace := &domain.Workplace{
		ID:      id,
		Name:    name,
		OwnerID: user.ID,
	}
	if err := workplace.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, workplace); err != nil {
		s.tracer.MarkSpanError(ctx, err)
		return nil, fmt.Errorf("failed to create workplace: %w", err)
	}

	member := &domain.WorkplaceMember{
		UserID:      user.ID,
		WorkplaceID: workplace.ID,
		Role:        domain.MemberRoleOwner,
	}
	if err := s.repo.AddUserToWorkplace(ctx, member); err != nil {
		s.tracer.MarkSpanError(ctx, err)
		return nil, fmt.Errorf("failed to add owner to workplace: %w", err)
	}

	if err := s.repo.CreateDatabase(ctx, workplace.ID); err != nil {
		s.tracer.MarkSpanError(ctx, err)
		s.logger.WithField("workplace_id", workplace.ID).Error(fmt.Sprintf("Failed to provision workplace database: %v", err))
		if cleanupErr := s.repo.Delete(ctx, workplace.ID); cleanupErr != nil {
			s.logger.WithField("workplace_id", workplace.ID).Warn(fmt.Sprintf("Failed to roll back workplace after provisioning failure: %v", cleanupErr))
		}
		return nil, fmt.Errorf("failed to provision workplace database: %w", err)
	}

	if err := s.repo.EnsureTenantUser(ctx, workplace.ID, user); err != nil {
		s.tracer.MarkSpanError(ctx, err)
		return nil, fmt.Errorf("failed to mirror owner into workplace database: %w", err)
	}

	return workplace, nil
}

func (s *WorkplaceService) GetWorkplace(ctx context.Context, id string) (*domain.Workplace, error) {
	ctx, _, err := s.authService.AuthenticateUserForWorkplace(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// ListWorkplaces returns the workplaces the caller is a member of
func (s *WorkplaceService) ListWorkplaces(ctx context.Context) ([]*domain.Workplace, error) {
	user, err := s.authService.AuthenticateUserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.GetUserWorkplaces(ctx, user.ID)
}

func (s *WorkplaceService) UpdateWorkplace(ctx context.Context, id, name string) (*domain.Workplace, error) {
	ctx, _, err := s.authService.AuthenticateUserForWorkplace(ctx, id)
	if err != nil {
		return nil, err
	}

	req := &domain.UpdateWorkplaceRequest{ID: id, Name: name}
	if err := req.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	workplace, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	workplace.Name = name

	if err := s.repo.Update(ctx, workplace); err != nil {
		return nil, fmt.Errorf("failed to update workplace: %w", err)
	}
	return workplace, nil
}

// DeleteWorkplace removes the workplace and its tenant database. Owner only.
func (s *WorkplaceService) DeleteWorkplace(ctx context.Context, id string) error {
	ctx, user, err := s.authService.AuthenticateUserForWorkplace(ctx, id)
	if err != nil {
		return err
	}

	isOwner, err := s.repo.IsUserWorkplaceOwner(ctx, user.ID, id)
	if err != nil {
		return fmt.Errorf("failed to check workplace ownership: %w", err)
	}
	if !isOwner {
		return ErrNotWorkplaceOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.WithField("workplace_id", id).Error(fmt.Sprintf("Failed to delete workplace: %v", err))
		return fmt.Errorf("failed to delete workplace: %w", err)
	}
	return nil
}

// LeaveWorkplace removes the caller from the workplace. The owner cannot
// leave, only delete.
func (s *WorkplaceService) LeaveWorkplace(ctx context.Context, workplaceID string) error {
	ctx, user, err := s.authService.AuthenticateUserForWorkplace(ctx, workplaceID)
	if err != nil {
		return err
	}

	isOwner, err := s.repo.IsUserWorkplaceOwner(ctx, user.ID, workplaceID)
	if err != nil {
		return fmt.Errorf("failed to check workplace ownership: %w", err)
	}
	if isOwner {
		return ErrOwnerCannotLeave
	}

	if err := s.repo.RemoveUserFromWorkplace(ctx, user.ID, workplaceID); err != nil {
		return fmt.Errorf("failed to leave workplace: %w", err)
	}
	if err := s.repo.RemoveTenantUser(ctx, workplaceID, user.ID); err != nil {
		return fmt.Errorf("failed to remove user from workplace database: %w", err)
	}
	return nil
}

func (s *WorkplaceService) GetMembers(ctx context.Context, workplaceID string) ([]*domain.WorkplaceMemberDetail, error) {
	ctx, _, err := s.authService.AuthenticateUserForWorkplace(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetWorkplaceMembersWithEmail(ctx, workplaceID)
}

// InviteMember creates an invitation and emails it. Re-inviting the same
// email replaces the previous invitation and resets its expiry.
func (s *WorkplaceService) InviteMember(ctx context.Context, workplaceID, email string) (*domain.WorkplaceInvitation, error) {
	ctx, inviter, err := s.authService.AuthenticateUserForWorkplace(ctx, workplaceID)
	if err != nil {
		return nil, err
	}

	email = strings.TrimSpace(strings.ToLower(email))
	req := &domain.InviteMemberRequest{WorkplaceID: workplaceID, Email: email}
	if err := req.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	// Already a member?
	if invited, err := s.userRepo.GetUserByEmail(ctx, email); err == nil {
		if _, err := s.repo.GetUserWorkplace(ctx, invited.ID, workplaceID); err == nil {
			return nil, domain.NewValidationError("user is already a member of this workplace")
		}
	}

	if existing, err := s.repo.GetInvitationByEmail(ctx, workplaceID, email); err == nil {
		if err := s.repo.DeleteInvitation(ctx, existing.ID); err != nil {
			return nil, fmt.Errorf("failed to replace existing invitation: %w", err)
		}
	}

	workplace, err := s.repo.GetByID(ctx, workplaceID)
	if err != nil {
		return nil, err
	}

	invitation := &domain.WorkplaceInvitation{
		ID:          uuid.New().String(),
		WorkplaceID: workplaceID,
		InviterID:   inviter.ID,
		Email:       email,
		ExpiresAt:   time.Now().UTC().Add(invitationExpiry),
	}
	if err := s.repo.CreateInvitation(ctx, invitation); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	token := s.authService.GenerateInvitationToken(invitation)
	if err := s.mailer.SendWorkplaceInvitation(email, workplace.Name, inviter.Name, token); err != nil {
		s.logger.WithField("workplace_id", workplaceID).WithField("email", email).Error(fmt.Sprintf("Failed to send invitation email: %v", err))
		return nil, fmt.Errorf("failed to send invitation email: %w", err)
	}

	return invitation, nil
}

// AcceptInvitation adds the caller to the invited workplace. Accepting twice
// is harmless since membership inserts are idempotent.
func (s *WorkplaceService) AcceptInvitation(ctx context.Context, invitationID string) error {
	user, err := s.authService.AuthenticateUserFromContext(ctx)
	if err != nil {
		return err
	}

	invitation, err := s.repo.GetInvitationByID(ctx, invitationID)
	if err != nil {
		return err
	}
	if time.Now().After(invitation.ExpiresAt) {
		return ErrInvitationExpired
	}
	if !strings.EqualFold(invitation.Email, user.Email) {
		return ErrInvitationMismatch
	}

	member := &domain.WorkplaceMember{
		UserID:      user.ID,
		WorkplaceID: invitation.WorkplaceID,
		Role:        domain.MemberRoleMember,
	}
	if err := s.repo.AddUserToWorkplace(ctx, member); err != nil {
		return fmt.Errorf("failed to add user to workplace: %w", err)
	}
	if err := s.repo.EnsureTenantUser(ctx, invitation.WorkplaceID, user); err != nil {
		return fmt.Errorf("failed to mirror user into workplace database: %w", err)
	}

	if err := s.repo.DeleteInvitation(ctx, invitation.ID); err != nil {
		return fmt.Errorf("failed to delete invitation: %w", err)
	}
	return nil
}

// RemoveMember removes another user from the workplace. Owner only, and the
// owner cannot remove themselves.
func (s *WorkplaceService) RemoveMember(ctx context.Context, workplaceID, userID string) error {
	ctx, caller, err := s.authService.AuthenticateUserForWorkplace(ctx, workplaceID)
	if err != nil {
		return err
	}

	isOwner, err := s.repo.IsUserWorkplaceOwner(ctx, caller.ID, workplaceID)
	if err != nil {
		return fmt.Errorf("failed to check workplace ownership: %w", err)
	}
	if !isOwner {
		return ErrNotWorkplaceOwner
	}
	if caller.ID == userID {
		return domain.NewValidationError("the owner cannot remove themselves")
	}

	if err := s.repo.RemoveUserFromWorkplace(ctx, userID, workplaceID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	if err := s.repo.RemoveTenantUser(ctx, workplaceID, userID); err != nil {
		return fmt.Errorf("failed to remove user from workplace database: %w", err)
	}
	return nil
}
