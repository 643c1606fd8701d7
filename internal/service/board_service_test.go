package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workplacehq/workplace/internal/domain"
	"github.com/workplacehq/workplace/internal/domain/mocks"
	"github.com/workplacehq/workplace/pkg/logger"
	"github.com/workplacehq/workplace/pkg/tracing"
)

func newTestBoardService(t *testing.T, ctrl *gomock.Controller) (*BoardService, *mocks.MockBoardRepository, *mocks.MockAuthService, *domain.PendingMutationRegistry) {
	t.Helper()

	repo := mocks.NewMockBoardRepository(ctrl)
	authService := mocks.NewMockAuthService(ctrl)
	registry := domain.NewPendingMutationRegistry()

	svc := NewBoardService(BoardServiceConfig{
		Repository:  repo,
		Registry:    registry,
		AuthService: authService,
		Logger:      logger.NewTestLogger(t),
		Tracer:      tracing.NewTracer(),
	})
	return svc, repo, authService, registry
}

func confirmedBoard() *domain.Board {
	task1 := &domain.Task{ID: "task1", ProjectID: "proj1", ColumnID: "col1", Name: "First", Order: 1}
	task2 := &domain.Task{ID: "task2", ProjectID: "proj1", ColumnID: "col1", Name: "Second", Order: 2}
	return &domain.Board{
		Project: &domain.Project{ID: "proj1", Name: "Launch", OwnerID: "user1"},
		Columns: []*domain.BoardColumn{
			{
				Column: domain.Column{ID: "col1", ProjectID: "proj1", Name: "To Do", Order: 1},
				Tasks:  []*domain.Task{task1, task2},
			},
			{
				Column: domain.Column{ID: "col2", ProjectID: "proj1", Name: "Done", Order: 2},
			},
		},
		TasksByID: map[string]*domain.Task{"task1": task1, "task2": task2},
	}
}

func TestBoardServiceGetBoard(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: "user1"}

	t.Run("no pending mutations returns the confirmed board", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, authService, _ := newTestBoardService(t, ctrl)

		authService.EXPECT().AuthenticateUserForWorkplace(gomock.Any(), "wp1").Return(ctx, user, nil)
		repo.EXPECT().GetBoard(gomock.Any(), "wp1", "proj1").Return(confirmedBoard(), nil)

		board, err := svc.GetBoard(ctx, "wp1", "proj1")
		require.NoError(t, err)
		require.Len(t, board.Columns, 2)
		assert.Len(t, board.Columns[0].Tasks, 2)
	})

	t.Run("pending move is overlaid onto the confirmed board", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, authService, registry := newTestBoardService(t, ctrl)

		registry.Register("wp1", "proj1", domain.MoveTaskMutation{
			CorrelationToken: "tok1",
			Task:             domain.Task{ID: "task1", ProjectID: "proj1", ColumnID: "col2", Name: "First", Order: 1},
		})

		authService.EXPECT().AuthenticateUserForWorkplace(gomock.Any(), "wp1").Return(ctx, user, nil)
		repo.EXPECT().GetBoard(gomock.Any(), "wp1", "proj1").Return(confirmedBoard(), nil)

		board, err := svc.GetBoard(ctx, "wp1", "proj1")
		require.NoError(t, err)
		require.Len(t, board.Columns, 2)
		assert.Len(t, board.Columns[0].Tasks, 1)
		require.Len(t, board.Columns[1].Tasks, 1)
		assert.Equal(t, "task1", board.Columns[1].Tasks[0].ID)
	})
}

func TestApplyMutationCreateColumn(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: "user1"}

	t.Run("appends after existing columns when order is unset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, authService, _ := newTestBoardService(t, ctrl)

		authService.EXPECT().AuthenticateUserForWorkplace(gomock.Any(), "wp1").Return(ctx, user, nil)
		repo.EXPECT().CountColumns(gomock.Any(), "wp1", "proj1").Return(2, nil)
		repo.EXPECT().CreateColumn(gomock.Any(), "wp1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, column *domain.Column) error {
				assert.Equal(t, "proj1", column.ProjectID)
				assert.Equal(t, float64(3), column.Order)
				assert.NotEmpty(t, column.ID)
				return nil
			})

		err := svc.ApplyMutation(ctx, "wp1", "proj1", domain.CreateColumnMutation{
			CorrelationToken: "tok1",
			Name:             "Review",
		})
		require.NoError(t, err)
	})

	t.Run("keeps an explicit order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, authService, _ := newTestBoardService(t, ctrl)

		authService.EXPECT().AuthenticateUserForWorkplace(gomock.Any(), "wp1").Return(ctx, user, nil)
		repo.EXPECT().CreateColumn(gomock.Any(), "wp1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, column *domain.Column) error {
				assert.Equal(t, 1.5, column.Order)
				return nil
			})

		err := svc.ApplyMutation(ctx, "wp1", "proj1", domain.CreateColumnMutation{
			CorrelationToken: "tok1",
			ID:               "col3",
			ProjectID:        "proj1",
			Name:             "Review",
			Order:            1.5,
		})
		require.NoError(t, err)
	})
}

func TestApplyMutationTasks(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: "user1"}

	t.Run("create task lands at the column end when order is unset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, authService, _ := newTestBoardService(t, ctrl)

		authService.EXPECT().AuthenticateUserForWorkplace(gomock.Any(), "wp1").Return(ctx, user, nil)
		repo.EXPECT().GetBoard(gomock.Any(), "wp1", "proj1").Return(confirmedBoard(), nil)
		repo.EXPECT().CreateTask(gomock.Any(), "wp1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, task *domain.Task) error {
				assert.Equal(t, float64(3), task.Order)
				assert.Equal(t, "user1", task.OwnerID)
				assert.False(t, task.CreatedAt.IsZero())
				return nil
			})

		err := svc.ApplyMutation(ctx, "wp1", "proj1", domain.CreateTaskMutation{
			CorrelationToken: "tok1",
			Task:             domain.Task{ID: "task3", ColumnID: "col1", Name: "Third"},
		})
		require.NoError(t, err)
	})

	t.Run("create task in an empty column starts at one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, authService, _ := newTestBoardService(t, ctrl)

		authService.EXPECT().AuthenticateUserForWorkplace(gomock.Any(), "wp1").Return(ctx, user, nil)
		repo.EXPECT().GetBoard(gomock.Any(), "wp1", "proj1").Return(confirmedBoard(), nil)
		repo.EXPECT().CreateTask(gomock.Any(), "wp1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, task *domain.Task) error {
				assert.Equal(t, float64(1), task.Order)
				return nil
			})

		err := svc.ApplyMutation(ctx, "wp1", "proj1", domain.CreateTaskMutation{
			CorrelationToken: "tok1",
			Task:             domain.Task{ID: "task3", ColumnID: "col2", Name: "Third"},
		})
		require.NoError(t, err)
	})

	t.Run("create task into an unknown column fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, authService, _ := newTestBoardService(t, ctrl)

		authService.EXPECT().AuthenticateUserForWorkplace(gomock.Any(), "wp1").Return(ctx, user, nil)
		repo.EXPECT().GetBoard(gomock.Any(), "wp1", "proj1").Return(confirmedBoard(), nil)

		err := svc.ApplyMutation(ctx, "wp1", "proj1", domain.CreateTaskMutation{
			CorrelationToken: "tok1",
			Task:             domain.Task{ID: "task3", ColumnID: "ghost", Name: "Third"},
		})
		require.Error(t, err)
		var notFound *domain.ErrColumnNotFound
		assert.True(t, errors.As(err, &notFound))
	})

	t.Run("move task", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, authService, _ := newTestBoardService(t, ctrl)

		authService.EXPECT().AuthenticateUserForWorkplace(gomock.Any(), "wp1").Return(ctx, user, nil)
		repo.EXPECT().MoveTask(gomock.Any(), "wp1", "task1", "col2", 1.5).Return(nil)

		err := svc.ApplyMutation(ctx, "wp1", "proj1", domain.MoveTaskMutation{
			CorrelationToken: "tok1",
			Task:             domain.Task{ID: "task1", ColumnID: "col2", Name: "First", Order: 1.5},
		})
		require.NoError(t, err)
	})

	t.Run("remove task", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, authService, _ := newTestBoardService(t, ctrl)

		authService.EXPECT().AuthenticateUserForWorkplace(gomock.Any(), "wp1").Return(ctx, user, nil)
		repo.EXPECT().DeleteTask(gomock.Any(), "wp1", "task1").Return(nil)

		err := svc.ApplyMutation(ctx, "wp1", "proj1", domain.RemoveTaskMutation{
			CorrelationToken: "tok1",
			ID:               "task1",
		})
		require.NoError(t, err)
	})
}

func TestApplyMutationResolvesOverlay(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: "user1"}

	t.Run("successful write leaves no pending overlay", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, authService, registry := newTestBoardService(t, ctrl)

		authService.EXPECT().AuthenticateUserForWorkplace(gomock.Any(), "wp1").Return(ctx, user, nil)
		repo.EXPECT().DeleteTask(gomock.Any(), "wp1", "task1").Return(nil)

		err := svc.ApplyMutation(ctx, "wp1", "proj1", domain.RemoveTaskMutation{CorrelationToken: "tok1", ID: "task1"})
		require.NoError(t, err)
		assert.Empty(t, registry.Pending("wp1", "proj1"))
	})

	t.Run("failed write reverts to the confirmed state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, authService, registry := newTestBoardService(t, ctrl)

		authService.EXPECT().AuthenticateUserForWorkplace(gomock.Any(), "wp1").Return(ctx, user, nil)
		repo.EXPECT().DeleteTask(gomock.Any(), "wp1", "task1").Return(errors.New("db down"))

		err := svc.ApplyMutation(ctx, "wp1", "proj1", domain.RemoveTaskMutation{CorrelationToken: "tok1", ID: "task1"})
		require.Error(t, err)
		assert.Empty(t, registry.Pending("wp1", "proj1"))
	})

	t.Run("overlay is visible to readers while the write is in flight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, authService, registry := newTestBoardService(t, ctrl)

		authService.EXPECT().AuthenticateUserForWorkplace(gomock.Any(), "wp1").Return(ctx, user, nil)
		repo.EXPECT().DeleteTask(gomock.Any(), "wp1", "task1").DoAndReturn(
			func(_ context.Context, _ string, _ string) error {
				pending := registry.Pending("wp1", "proj1")
				require.Len(t, pending, 1)
				assert.Equal(t, "tok1", pending[0].Token())
				return nil
			})

		err := svc.ApplyMutation(ctx, "wp1", "proj1", domain.RemoveTaskMutation{CorrelationToken: "tok1", ID: "task1"})
		require.NoError(t, err)
	})
}
