package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workplacehq/workplace/internal/domain"
	"github.com/workplacehq/workplace/internal/domain/mocks"
	"github.com/workplacehq/workplace/pkg/logger"
	pkgmocks "github.com/workplacehq/workplace/pkg/mocks"
	"github.com/workplacehq/workplace/pkg/tracing"
)

func newTestWorkplaceService(t *testing.T, ctrl *gomock.Controller) (*WorkplaceService, *mocks.MockWorkplaceRepository, *mocks.MockUserRepository, *mocks.MockAuthService, *pkgmocks.MockMailer) {
	t.Helper()

	repo := mocks.NewMockWorkplaceRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)
	authService := mocks.NewMockAuthService(ctrl)
	mockMailer := pkgmocks.NewMockMailer(ctrl)

	svc := NewWorkplaceService(WorkplaceServiceConfig{
		Repository:     repo,
		UserRepository: userRepo,
		AuthService:    authService,
		Mailer:         mockMailer,
		Logger:         logger.NewTestLogger(t),
		Tracer:         tracing.NewTracer(),
	})
	return svc, repo, userRepo, authService, mockMailer
}

func TestCreateWorkplace(t *testing.T) {
	ctx := context.Background()
	owner := &domain.User{ID: "user1", Email: "alice@example.com", Name: "Alice"}

	t.Run("creates registry rows, provisions and mirrors the owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, _, authService, _ := newTestWorkplaceService(t, ctrl)

		authService.EXPECT().AuthenticateUserFromContext(gomock.Any()).Return(owner, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, workplace *domain.Workplace) error {
				assert.Equal(t, "acme", workplace.ID)
				assert.Equal(t, "user1", workplace.OwnerID)
				return nil
			})
		repo.EXPECT().AddUserToWorkplace(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, member *domain.WorkplaceMember) error {
				assert.Equal(t, domain.MemberRoleOwner, member.Role)
				return nil
			})
		repo.EXPECT().CreateDatabase(gomock.Any(), "acme").Return(nil)
		repo.EXPECT().EnsureTenantUser(gomock.Any(), "acme", owner).Return(nil)

		workplace, err := svc.CreateWorkplace(ctx, "acme", "Acme Inc")
		require.NoError(t, err)
		assert.Equal(t, "Acme Inc", workplace.Name)
	})

	t.Run("rejects invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, _, authService, _ := newTestWorkplaceService(t, ctrl)

		authService.EXPECT().AuthenticateUserFromContext(gomock.Any()).Return(owner, nil)

		_, err := svc.CreateWorkplace(ctx, "Invalid ID!", "Acme Inc")
		require.Error(t, err)
		var validationErr domain.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})

	t.Run("provisioning failure rolls back the registry rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, _, authService, _ := newTestWorkplaceService(t, ctrl)

		authService.EXPECT().AuthenticateUserFromContext(gomock.Any()).Return(owner, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().AddUserToWorkplace(gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().CreateDatabase(gomock.Any(), "acme").Return(errors.New("create database failed"))
		repo.EXPECT().Delete(gomock.Any(), "acme").Return(nil)

		_, err := svc.CreateWorkplace(ctx, "acme", "Acme Inc")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to provision workplace database")
	})
}

func TestDeleteWorkplace(t *testing.T) {
	ctx := context.Background()
	owner := &domain.User{ID: "user1", Email: "alice@example.com"}

	t.Run("owner deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, _, authService, _ := newTestWorkplaceService(t, ctrl)

		authService.EXPECT().AuthenticateUserForWorkplace(gomock.Any(), "acme").Return(ctx, owner, nil)
		repo.EXPECT().IsUserWorkplaceOwner(gomock.Any(), "user1", "acme").Return(true, nil)
		repo.EXPECT().Delete(gomock.Any(), "acme").Return(nil)

		require.NoError(t, svc.DeleteWorkplace(ctx, "acme"))
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, _, authService, _ := newTestWorkplaceService(t, ctrl)

		authService.EXPECT().AuthenticateUserForWorkplace(gomock.Any(), "acme").Return(ctx, owner, nil)
		repo.EXPECT().IsUserWorkplaceOwner(gomock.Any(), "user1", "acme").Return(false, nil)

		err := svc.DeleteWorkplace(ctx, "acme")
		assert.ErrorIs(t, err, ErrNotWorkplaceOwner)
	})
}

func TestLeaveWorkplace(t *testing.T) {
	ctx := context.Background()
	member := &domain.User{ID: "user2", Email: "bob@example.com"}

	t.Run("member leaves and tenant mirror row is removed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, _, authService, _ := newTestWorkplaceService(t, ctrl)

		authService.EXPECT().AuthenticateUserForWorkplace(gomock.Any(), "acme").Return(ctx, member, nil)
		repo.EXPECT().IsUserWorkplaceOwner(gomock.Any(), "user2", "acme").Return(false, nil)
		repo.EXPECT().RemoveUserFromWorkplace(gomock.Any(), "user2", "acme").Return(nil)
		repo.EXPECT().RemoveTenantUser(gomock.Any(), "acme", "user2").Return(nil)

		require.NoError(t, svc.LeaveWorkplace(ctx, "acme"))
	})

	t.Run("owner cannot leave", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, _, authService, _ := newTestWorkplaceService(t, ctrl)

		authService.EXPECT().AuthenticateUserForWorkplace(gomock.Any(), "acme").Return(ctx, member, nil)
		repo.EXPECT().IsUserWorkplaceOwner(gomock.Any(), "user2", "acme").Return(true, nil)

		err := svc.LeaveWorkplace(ctx, "acme")
		assert.ErrorIs(t, err, ErrOwnerCannotLeave)
	})
}

func TestInviteMember(t *testing.T) {
	ctx := context.Background()
	inviter := &domain.User{ID: "user1", Email: "alice@example.com", Name: "Alice"}
	workplace := &domain.Workplace{ID: "acme", Name: "Acme Inc", OwnerID: "user1"}

	t.Run("creates invitation and sends email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, userRepo, authService, mockMailer := newTestWorkplaceService(t, ctrl)

		authService.EXPECT().AuthenticateUserForWorkplace(gomock.Any(), "acme").Return(ctx, inviter, nil)
		userRepo.EXPECT().GetUserByEmail(gomock.Any(), "bob@example.com").
			Return(nil, &domain.ErrUserNotFound{Message: "user not found"})
		repo.EXPECT().GetInvitationByEmail(gomock.Any(), "acme", "bob@example.com").
			Return(nil, &domain.ErrInvitationNotFound{Message: "invitation not found"})
		repo.EXPECT().GetByID(gomock.Any(), "acme").Return(workplace, nil)
		repo.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, invitation *domain.WorkplaceInvitation) error {
				assert.NotEmpty(t, invitation.ID)
				assert.Equal(t, "user1", invitation.InviterID)
				assert.WithinDuration(t, time.Now().Add(invitationExpiry), invitation.ExpiresAt, time.Minute)
				return nil
			})
		authService.EXPECT().GenerateInvitationToken(gomock.Any()).Return("inv-token")
		mockMailer.EXPECT().SendWorkplaceInvitation("bob@example.com", "Acme Inc", "Alice", "inv-token").Return(nil)

		invitation, err := svc.InviteMember(ctx, "acme", "Bob@Example.com")
		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", invitation.Email)
	})

	t.Run("re-invite replaces the previous invitation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, userRepo, authService, mockMailer := newTestWorkplaceService(t, ctrl)

		authService.EXPECT().AuthenticateUserForWorkplace(gomock.Any(), "acme").Return(ctx, inviter, nil)
		userRepo.EXPECT().GetUserByEmail(gomock.Any(), "bob@example.com").
			Return(nil, &domain.ErrUserNotFound{Message: "user not found"})
		repo.EXPECT().GetInvitationByEmail(gomock.Any(), "acme", "bob@example.com").
			Return(&domain.WorkplaceInvitation{ID: "inv-old"}, nil)
		repo.EXPECT().DeleteInvitation(gomock.Any(), "inv-old").Return(nil)
		repo.EXPECT().GetByID(gomock.Any(), "acme").Return(workplace, nil)
		repo.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).Return(nil)
		authService.EXPECT().GenerateInvitationToken(gomock.Any()).Return("inv-token")
		mockMailer.EXPECT().SendWorkplaceInvitation("bob@example.com", "Acme Inc", "Alice", "inv-token").Return(nil)

		_, err := svc.InviteMember(ctx, "acme", "bob@example.com")
		require.NoError(t, err)
	})

	t.Run("existing member is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, userRepo, authService, _ := newTestWorkplaceService(t, ctrl)

		authService.EXPECT().AuthenticateUserForWorkplace(gomock.Any(), "acme").Return(ctx, inviter, nil)
		userRepo.EXPECT().GetUserByEmail(gomock.Any(), "bob@example.com").
			Return(&domain.User{ID: "user2", Email: "bob@example.com"}, nil)
		repo.EXPECT().GetUserWorkplace(gomock.Any(), "user2", "acme").
			Return(&domain.WorkplaceMember{UserID: "user2", WorkplaceID: "acme"}, nil)

		_, err := svc.InviteMember(ctx, "acme", "bob@example.com")
		require.Error(t, err)
		var validationErr domain.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, _, authService, _ := newTestWorkplaceService(t, ctrl)

		authService.EXPECT().AuthenticateUserForWorkplace(gomock.Any(), "acme").Return(ctx, inviter, nil)

		_, err := svc.InviteMember(ctx, "acme", "not-an-email")
		require.Error(t, err)
		var validationErr domain.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})
}

func TestAcceptInvitation(t *testing.T) {
	ctx := context.Background()
	invited := &domain.User{ID: "user2", Email: "bob@example.com", Name: "Bob"}

	validInvitation := func() *domain.WorkplaceInvitation {
		return &domain.WorkplaceInvitation{
			ID:          "inv1",
			WorkplaceID: "acme",
			InviterID:   "user1",
			Email:       "bob@example.com",
			ExpiresAt:   time.Now().UTC().Add(time.Hour),
		}
	}

	t.Run("adds member, mirrors user and deletes invitation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, _, authService, _ := newTestWorkplaceService(t, ctrl)

		authService.EXPECT().AuthenticateUserFromContext(gomock.Any()).Return(invited, nil)
		repo.EXPECT().GetInvitationByID(gomock.Any(), "inv1").Return(validInvitation(), nil)
		repo.EXPECT().AddUserToWorkplace(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, member *domain.WorkplaceMember) error {
				assert.Equal(t, domain.MemberRoleMember, member.Role)
				assert.Equal(t, "acme", member.WorkplaceID)
				return nil
			})
		repo.EXPECT().EnsureTenantUser(gomock.Any(), "acme", invited).Return(nil)
		repo.EXPECT().DeleteInvitation(gomock.Any(), "inv1").Return(nil)

		require.NoError(t, svc.AcceptInvitation(ctx, "inv1"))
	})

	t.Run("expired invitation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, _, authService, _ := newTestWorkplaceService(t, ctrl)

		invitation := validInvitation()
		invitation.ExpiresAt = time.Now().UTC().Add(-time.Hour)

		authService.EXPECT().AuthenticateUserFromContext(gomock.Any()).Return(invited, nil)
		repo.EXPECT().GetInvitationByID(gomock.Any(), "inv1").Return(invitation, nil)

		err := svc.AcceptInvitation(ctx, "inv1")
		assert.ErrorIs(t, err, ErrInvitationExpired)
	})

	t.Run("email mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, _, authService, _ := newTestWorkplaceService(t, ctrl)

		other := &domain.User{ID: "user3", Email: "carol@example.com"}
		authService.EXPECT().AuthenticateUserFromContext(gomock.Any()).Return(other, nil)
		repo.EXPECT().GetInvitationByID(gomock.Any(), "inv1").Return(validInvitation(), nil)

		err := svc.AcceptInvitation(ctx, "inv1")
		assert.ErrorIs(t, err, ErrInvitationMismatch)
	})
}

func TestRemoveMember(t *testing.T) {
	ctx := context.Background()
	owner := &domain.User{ID: "user1", Email: "alice@example.com"}

	t.Run("owner removes a member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, _, authService, _ := newTestWorkplaceService(t, ctrl)

		authService.EXPECT().AuthenticateUserForWorkplace(gomock.Any(), "acme").Return(ctx, owner, nil)
		repo.EXPECT().IsUserWorkplaceOwner(gomock.Any(), "user1", "acme").Return(true, nil)
		repo.EXPECT().RemoveUserFromWorkplace(gomock.Any(), "user2", "acme").Return(nil)
		repo.EXPECT().RemoveTenantUser(gomock.Any(), "acme", "user2").Return(nil)

		require.NoError(t, svc.RemoveMember(ctx, "acme", "user2"))
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, _, authService, _ := newTestWorkplaceService(t, ctrl)

		authService.EXPECT().AuthenticateUserForWorkplace(gomock.Any(), "acme").Return(ctx, owner, nil)
		repo.EXPECT().IsUserWorkplaceOwner(gomock.Any(), "user1", "acme").Return(false, nil)

		err := svc.RemoveMember(ctx, "acme", "user2")
		assert.ErrorIs(t, err, ErrNotWorkplaceOwner)
	})

	t.Run("owner cannot remove themselves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, _, authService, _ := newTestWorkplaceService(t, ctrl)

		authService.EXPECT().AuthenticateUserForWorkplace(gomock.Any(), "acme").Return(ctx, owner, nil)
		repo.EXPECT().IsUserWorkplaceOwner(gomock.Any(), "user1", "acme").Return(true, nil)

		err := svc.RemoveMember(ctx, "acme", "user1")
		require.Error(t, err)
		var validationErr domain.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})
}

func TestListWorkplaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _, authService, _ := newTestWorkplaceService(t, ctrl)
	user := &domain.User{ID: "user1"}

	authService.EXPECT().AuthenticateUserFromContext(gomock.Any()).Return(user, nil)
	repo.EXPECT().GetUserWorkplaces(gomock.Any(), "user1").
		Return([]*domain.Workplace{{ID: "acme"}, {ID: "globex"}}, nil)

	workplaces, err := svc.ListWorkplaces(context.Background())
	require.NoError(t, err)
	assert.Len(t, workplaces, 2)
}
