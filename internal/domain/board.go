package domain

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -destination mocks/mock_board_repository.go -package mocks github.com/workplacehq/workplace/internal/domain BoardRepository
//go:generate mockgen -destination mocks/mock_board_service.go -package mocks github.com/workplacehq/workplace/internal/domain BoardServiceInterface

// Column is a kanban column. Order values are comparable reals, strictly
// increasing by position, not necessarily contiguous.
type Column struct {
	ID        string  `json:"id" db:"id"`
	ProjectID string  `json:"project_id" db:"project_id"`
	Name      string  `json:"name" db:"name"`
	Order     float64 `json:"order" db:"order"`
}

func (c *Column) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("invalid column: id is required")
	}
	if c.ProjectID == "" {
		return fmt.Errorf("invalid column: project_id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("invalid column: name is required")
	}
	return nil
}

// Task belongs to exactly one column at a time. Moving a task changes its
// column and/or order atomically. Order is a fractional key within the
// column (see MidpointOrder).
type Task struct {
	ID        string    `json:"id" db:"id"`
	ProjectID string    `json:"project_id" db:"project_id"`
	ColumnID  string    `json:"column_id" db:"column_id"`
	Name      string    `json:"name" db:"name"`
	Content   string    `json:"content" db:"content"`
	Order     float64   `json:"order" db:"order"`
	OwnerID   string    `json:"owner_id" db:"owner_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (t *Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("invalid task: id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("invalid task: name is required")
	}
	if t.ColumnID == "" {
		return fmt.Errorf("invalid task: column_id is required")
	}
	return nil
}

// BoardColumn is a column with its ordered tasks
type BoardColumn struct {
	Column
	Tasks []*Task `json:"tasks"`
}

// Board is the aggregate read model of one project: columns in order, each
// holding its tasks in order, plus a by-id index over every task.
type Board struct {
	Project   *Project         `json:"project"`
	Columns   []*BoardColumn   `json:"columns"`
	TasksByID map[string]*Task `json:"-"`
}

// BoardRepository reads and mutates the columns+tasks state of one project
// inside its workplace's database.
type BoardRepository interface {
	GetBoard(ctx context.Context, workplaceID string, projectID string) (*Board, error)

	CreateColumn(ctx context.Context, workplaceID string, column *Column) error
	RenameColumn(ctx context.Context, workplaceID string, columnID string, name string) error
	DeleteColumn(ctx context.Context, workplaceID string, columnID string) error
	CountColumns(ctx context.Context, workplaceID string, projectID string) (int, error)

	CreateTask(ctx context.Context, workplaceID string, task *Task) error
	MoveTask(ctx context.Context, workplaceID string, taskID string, columnID string, order float64) error
	DeleteTask(ctx context.Context, workplaceID string, taskID string) error
}

// BoardServiceInterface exposes the merged (optimistic) board view and the
// mutation entry point.
type BoardServiceInterface interface {
	GetBoard(ctx context.Context, workplaceID, projectID string) (*Board, error)
	ApplyMutation(ctx context.Context, workplaceID, projectID string, mutation BoardMutation) error
}

// ErrColumnNotFound is returned when a column is not found
type ErrColumnNotFound struct {
	Message string
}

func (e *ErrColumnNotFound) Error() string {
	return e.Message
}

// ErrTaskNotFound is returned when a task is not found
type ErrTaskNotFound struct {
	Message string
}

func (e *ErrTaskNotFound) Error() string {
	return e.Message
}
