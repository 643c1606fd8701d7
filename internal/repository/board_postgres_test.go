package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workplacehq/workplace/internal/domain"
	"github.com/workplacehq/workplace/internal/repository/testutil"
)

func setupBoardRepo(t *testing.T) (domain.BoardRepository, sqlmock.Sqlmock, func()) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	workplaceRepo := testutil.NewMockWorkplaceRepository(db)
	workplaceRepo.AddWorkplaceDB("wp1", db)
	projectRepo := NewProjectRepository(workplaceRepo)
	return NewBoardRepository(workplaceRepo, projectRepo), mock, cleanup
}

func TestGetBoard(t *testing.T) {
	repo, mock, cleanup := setupBoardRepo(t)
	defer cleanup()

	now := time.Now().UTC().Truncate(time.Microsecond)

	projectRows := sqlmock.NewRows([]string{"id", "name", "owner_id", "created_at", "updated_at"}).
		AddRow("proj1", "Website Redesign", "user1", now, now)
	mock.ExpectQuery(`SELECT (.+) FROM projects`).
		WithArgs("proj1").
		WillReturnRows(projectRows)

	columnRows := sqlmock.NewRows([]string{"id", "project_id", "name", "order"}).
		AddRow("col1", "proj1", "To Do", 1.0).
		AddRow("col2", "proj1", "Done", 2.0)
	mock.ExpectQuery(`SELECT (.+) FROM project_columns`).
		WithArgs("proj1").
		WillReturnRows(columnRows)

	taskRows := sqlmock.NewRows([]string{"id", "project_id", "column_id", "name", "content", "order", "owner_id", "created_at"}).
		AddRow("task1", "proj1", "col1", "First", "", 1.0, "user1", now).
		AddRow("task2", "proj1", "col1", "Second", "details", 2.0, "user1", now).
		AddRow("task3", "proj1", "col2", "Shipped", "", 1.0, "user2", now)
	mock.ExpectQuery(`SELECT (.+) FROM project_tasks`).
		WithArgs("proj1").
		WillReturnRows(taskRows)

	board, err := repo.GetBoard(context.Background(), "wp1", "proj1")
	require.NoError(t, err)

	require.Len(t, board.Columns, 2)
	assert.Equal(t, "To Do", board.Columns[0].Name)
	require.Len(t, board.Columns[0].Tasks, 2)
	assert.Equal(t, "First", board.Columns[0].Tasks[0].Name)
	assert.Equal(t, "Second", board.Columns[0].Tasks[1].Name)
	require.Len(t, board.Columns[1].Tasks, 1)
	assert.Equal(t, "task3", board.Columns[1].Tasks[0].ID)
	assert.Len(t, board.TasksByID, 3)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBoardProjectNotFound(t *testing.T) {
	repo, mock, cleanup := setupBoardRepo(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM projects`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "owner_id", "created_at", "updated_at"}))

	_, err := repo.GetBoard(context.Background(), "wp1", "missing")
	require.Error(t, err)
	var notFound *domain.ErrProjectNotFound
	assert.True(t, errors.As(err, &notFound))
}

func TestCreateColumn(t *testing.T) {
	repo, mock, cleanup := setupBoardRepo(t)
	defer cleanup()

	t.Run("creates column", func(t *testing.T) {
		column := &domain.Column{ID: "col1", ProjectID: "proj1", Name: "Review", Order: 3}

		mock.ExpectExec(`INSERT INTO project_columns`).
			WithArgs("col1", "proj1", "Review", 3.0).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.CreateColumn(context.Background(), "wp1", column)
		require.NoError(t, err)
	})

	t.Run("rejects column without name", func(t *testing.T) {
		column := &domain.Column{ID: "col1", ProjectID: "proj1"}

		err := repo.CreateColumn(context.Background(), "wp1", column)
		require.Error(t, err)
	})
}

func TestRenameColumn(t *testing.T) {
	repo, mock, cleanup := setupBoardRepo(t)
	defer cleanup()

	t.Run("renames", func(t *testing.T) {
		mock.ExpectExec(`UPDATE project_columns`).
			WithArgs("In Review", "col1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.RenameColumn(context.Background(), "wp1", "col1", "In Review")
		require.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(`UPDATE project_columns`).
			WithArgs("In Review", "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.RenameColumn(context.Background(), "wp1", "missing", "In Review")
		require.Error(t, err)
		var notFound *domain.ErrColumnNotFound
		assert.True(t, errors.As(err, &notFound))
	})
}

func TestDeleteColumn(t *testing.T) {
	repo, mock, cleanup := setupBoardRepo(t)
	defer cleanup()

	t.Run("deletes column and its tasks", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM task_timesheets`).
			WithArgs("col1").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM task_comments`).
			WithArgs("col1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM task_assignees`).
			WithArgs("col1").
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`DELETE FROM project_tasks`).
			WithArgs("col1").
			WillReturnResult(sqlmock.NewResult(0, 4))
		mock.ExpectExec(`DELETE FROM project_columns`).
			WithArgs("col1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.DeleteColumn(context.Background(), "wp1", "col1")
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM task_timesheets`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM task_comments`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM task_assignees`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM project_tasks`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM project_columns`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.DeleteColumn(context.Background(), "wp1", "missing")
		require.Error(t, err)
		var notFound *domain.ErrColumnNotFound
		assert.True(t, errors.As(err, &notFound))
	})
}

func TestCountColumns(t *testing.T) {
	repo, mock, cleanup := setupBoardRepo(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT COUNT`).
		WithArgs("proj1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountColumns(context.Background(), "wp1", "proj1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestCreateTask(t *testing.T) {
	repo, mock, cleanup := setupBoardRepo(t)
	defer cleanup()

	t.Run("creates task", func(t *testing.T) {
		task := &domain.Task{
			ID:        "task1",
			ProjectID: "proj1",
			ColumnID:  "col1",
			Name:      "Write copy",
			Content:   "Landing page hero text",
			Order:     1.5,
			OwnerID:   "user1",
		}

		mock.ExpectExec(`INSERT INTO project_tasks`).
			WithArgs("task1", "proj1", "col1", "Write copy", "Landing page hero text", 1.5, "user1", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.CreateTask(context.Background(), "wp1", task)
		require.NoError(t, err)
		assert.False(t, task.CreatedAt.IsZero())
	})

	t.Run("rejects task without column", func(t *testing.T) {
		task := &domain.Task{ID: "task1", ProjectID: "proj1", Name: "Orphan"}

		err := repo.CreateTask(context.Background(), "wp1", task)
		require.Error(t, err)
	})
}

func TestMoveTask(t *testing.T) {
	repo, mock, cleanup := setupBoardRepo(t)
	defer cleanup()

	t.Run("moves task", func(t *testing.T) {
		mock.ExpectExec(`UPDATE project_tasks`).
			WithArgs("col2", 2.75, "task1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.MoveTask(context.Background(), "wp1", "task1", "col2", 2.75)
		require.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(`UPDATE project_tasks`).
			WithArgs("col2", 2.75, "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.MoveTask(context.Background(), "wp1", "missing", "col2", 2.75)
		require.Error(t, err)
		var notFound *domain.ErrTaskNotFound
		assert.True(t, errors.As(err, &notFound))
	})
}

func TestDeleteTask(t *testing.T) {
	repo, mock, cleanup := setupBoardRepo(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM task_timesheets`).
		WithArgs("task1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM task_comments`).
		WithArgs("task1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM task_assignees`).
		WithArgs("task1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM project_tasks`).
		WithArgs("task1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteTask(context.Background(), "wp1", "task1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
