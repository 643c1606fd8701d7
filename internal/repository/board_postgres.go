package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/workplacehq/workplace/internal/domain"
)

type boardRepository struct {
	workplaceRepo domain.WorkplaceRepository
	projectRepo   domain.ProjectRepository
}

// NewBoardRepository creates a new PostgreSQL board repository
func NewBoardRepository(workplaceRepo domain.WorkplaceRepository, projectRepo domain.ProjectRepository) domain.BoardRepository {
	return &boardRepository{
		workplaceRepo: workplaceRepo,
		projectRepo:   projectRepo,
	}
}

// GetBoard loads the confirmed state of one project: columns and tasks, both
// ordered by their "order" key.
func (r *boardRepository) GetBoard(ctx context.Context, workplaceID string, projectID string) (*domain.Board, error) {
	project, err := r.projectRepo.GetByID(ctx, workplaceID, projectID)
	if err != nil {
		return nil, err
	}

	workplaceDB, err := r.workplaceRepo.GetConnection(ctx, workplaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workplace connection: %w", err)
	}

	columnsQuery := `
		SELECT id, project_id, name, "order"
		FROM project_columns
		WHERE project_id = $1
		ORDER BY "order" ASC
	`
	rows, err := workplaceDB.QueryContext(ctx, columnsQuery, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get board columns: %w", err)
	}
	defer rows.Close()

	board := &domain.Board{
		Project:   project,
		Columns:   []*domain.BoardColumn{},
		TasksByID: make(map[string]*domain.Task),
	}
	columnsByID := make(map[string]*domain.BoardColumn)

	for rows.Next() {
		var column domain.Column
		if err := rows.Scan(&column.ID, &column.ProjectID, &column.Name, &column.Order); err != nil {
			return nil, fmt.Errorf("failed to scan column: %w", err)
		}
		boardColumn := &domain.BoardColumn{Column: column, Tasks: []*domain.Task{}}
		board.Columns = append(board.Columns, boardColumn)
		columnsByID[column.ID] = boardColumn
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating columns rows: %w", err)
	}

	tasksQuery := `
		SELECT id, project_id, column_id, name, content, "order", owner_id, created_at
		FROM project_tasks
		WHERE project_id = $1
		ORDER BY "order" ASC
	`
	taskRows, err := workplaceDB.QueryContext(ctx, tasksQuery, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get board tasks: %w", err)
	}
	defer taskRows.Close()

	for taskRows.Next() {
		var task domain.Task
		err := taskRows.Scan(
			&task.ID,
			&task.ProjectID,
			&task.ColumnID,
			&task.Name,
			&task.Content,
			&task.Order,
			&task.OwnerID,
			&task.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		board.TasksByID[task.ID] = &task
		if column, ok := columnsByID[task.ColumnID]; ok {
			column.Tasks = append(column.Tasks, &task)
		}
	}
	if err := taskRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tasks rows: %w", err)
	}

	return board, nil
}

func (r *boardRepository) CreateColumn(ctx context.Context, workplaceID string, column *domain.Column) error {
	if err := column.Validate(); err != nil {
		return err
	}

	workplaceDB, err := r.workplaceRepo.GetConnection(ctx, workplaceID)
	if err != nil {
		return fmt.Errorf("failed to get workplace connection: %w", err)
	}

	query := `
		INSERT INTO project_columns (id, project_id, name, "order")
		VALUES ($1, $2, $3, $4)
	`
	_, err = workplaceDB.ExecContext(ctx, query,
		column.ID,
		column.ProjectID,
		column.Name,
		column.Order,
	)
	if err != nil {
		return fmt.Errorf("failed to create column: %w", err)
	}
	return nil
}

func (r *boardRepository) RenameColumn(ctx context.Context, workplaceID string, columnID string, name string) error {
	workplaceDB, err := r.workplaceRepo.GetConnection(ctx, workplaceID)
	if err != nil {
		return fmt.Errorf("failed to get workplace connection: %w", err)
	}

	query := `UPDATE project_columns SET name = $1 WHERE id = $2`
	result, err := workplaceDB.ExecContext(ctx, query, name, columnID)
	if err != nil {
		return fmt.Errorf("failed to rename column: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrColumnNotFound{Message: "column not found"}
	}
	return nil
}

// DeleteColumn removes the column and its tasks atomically. Tasks do not
// survive their column.
func (r *boardRepository) DeleteColumn(ctx context.Context, workplaceID string, columnID string) error {
	return r.workplaceRepo.WithWorkplaceTransaction(ctx, workplaceID, func(tx *sql.Tx) error {
		cleanupQueries := []string{
			`DELETE FROM task_timesheets WHERE task_id IN (SELECT id FROM project_tasks WHERE column_id = $1)`,
			`DELETE FROM task_comments WHERE task_id IN (SELECT id FROM project_tasks WHERE column_id = $1)`,
			`DELETE FROM task_assignees WHERE task_id IN (SELECT id FROM project_tasks WHERE column_id = $1)`,
			`DELETE FROM project_tasks WHERE column_id = $1`,
		}
		for _, q := range cleanupQueries {
			if _, err := tx.ExecContext(ctx, q, columnID); err != nil {
				return fmt.Errorf("failed to delete column tasks: %w", err)
			}
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM project_columns WHERE id = $1`, columnID)
		if err != nil {
			return fmt.Errorf("failed to delete column: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}
		if rows == 0 {
			return &domain.ErrColumnNotFound{Message: "column not found"}
		}
		return nil
	})
}

func (r *boardRepository) CountColumns(ctx context.Context, workplaceID string, projectID string) (int, error) {
	workplaceDB, err := r.workplaceRepo.GetConnection(ctx, workplaceID)
	if err != nil {
		return 0, fmt.Errorf("failed to get workplace connection: %w", err)
	}

	var count int
	query := `SELECT COUNT(*) FROM project_columns WHERE project_id = $1`
	if err := workplaceDB.QueryRowContext(ctx, query, projectID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count columns: %w", err)
	}
	return count, nil
}

func (r *boardRepository) CreateTask(ctx context.Context, workplaceID string, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	workplaceDB, err := r.workplaceRepo.GetConnection(ctx, workplaceID)
	if err != nil {
		return fmt.Errorf("failed to get workplace connection: %w", err)
	}

	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO project_tasks (id, project_id, column_id, name, content, "order", owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = workplaceDB.ExecContext(ctx, query,
		task.ID,
		task.ProjectID,
		task.ColumnID,
		task.Name,
		task.Content,
		task.Order,
		task.OwnerID,
		task.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// MoveTask reassigns the task's column and order key in one statement, so a
// move is atomic: the task is never in two columns and never in none.
func (r *boardRepository) MoveTask(ctx context.Context, workplaceID string, taskID string, columnID string, order float64) error {
	workplaceDB, err := r.workplaceRepo.GetConnection(ctx, workplaceID)
	if err != nil {
		return fmt.Errorf("failed to get workplace connection: %w", err)
	}

	query := `UPDATE project_tasks SET column_id = $1, "order" = $2 WHERE id = $3`
	result, err := workplaceDB.ExecContext(ctx, query, columnID, order, taskID)
	if err != nil {
		return fmt.Errorf("failed to move task: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrTaskNotFound{Message: "task not found"}
	}
	return nil
}

func (r *boardRepository) DeleteTask(ctx context.Context, workplaceID string, taskID string) error {
	return r.workplaceRepo.WithWorkplaceTransaction(ctx, workplaceID, func(tx *sql.Tx) error {
		cleanupQueries := []string{
			`DELETE FROM task_timesheets WHERE task_id = $1`,
			`DELETE FROM task_comments WHERE task_id = $1`,
			`DELETE FROM task_assignees WHERE task_id = $1`,
		}
		for _, q := range cleanupQueries {
			if _, err := tx.ExecContext(ctx, q, taskID); err != nil {
				return fmt.Errorf("failed to delete task data: %w", err)
			}
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM project_tasks WHERE id = $1`, taskID)
		if err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}
		if rows == 0 {
			return &domain.ErrTaskNotFound{Message: "task not found"}
		}
		return nil
	})
}
