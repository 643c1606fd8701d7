package domain

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -destination mocks/mock_task_repository.go -package mocks github.com/workplacehq/workplace/internal/domain TaskRepository
//go:generate mockgen -destination mocks/mock_task_service.go -package mocks github.com/workplacehq/workplace/internal/domain TaskServiceInterface

// TaskAssignee associates a user with a task
type TaskAssignee struct {
	UserID string `json:"user_id" db:"user_id"`
	TaskID string `json:"task_id" db:"task_id"`
}

// Comment is a user comment on a task
type Comment struct {
	ID          string    `json:"id" db:"id"`
	TaskID      string    `json:"task_id" db:"task_id"`
	UserID      string    `json:"user_id" db:"user_id"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

func (c *Comment) Validate() error {
	if c.TaskID == "" {
		return fmt.Errorf("invalid comment: task_id is required")
	}
	if c.Description == "" {
		return fmt.Errorf("invalid comment: description is required")
	}
	return nil
}

// Timesheet is one time-tracking entry. An entry is open while StopTime is
// nil. Stopping picks the user's most-recently-started open entry, so two
// overlapping starts can stop the wrong one; see TaskServiceInterface.StopTimesheet.
type Timesheet struct {
	ID          string     `json:"id" db:"id"`
	TaskID      string     `json:"task_id" db:"task_id"`
	UserID      string     `json:"user_id" db:"user_id"`
	StartTime   time.Time  `json:"start_time" db:"start_time"`
	StopTime    *time.Time `json:"stop_time,omitempty" db:"stop_time"`
	Description *string    `json:"description,omitempty" db:"description"`
}

// TaskDetail is a task joined with its assignees, comments and timesheets
type TaskDetail struct {
	Task       Task         `json:"task"`
	Assignees  []*User      `json:"assignees"`
	Comments   []*Comment   `json:"comments"`
	Timesheets []*Timesheet `json:"timesheets"`
}

type UpdateTaskRequest struct {
	WorkplaceID string `json:"workplace_id"`
	TaskID      string `json:"task_id"`
	Name        string `json:"name"`
	Content     string `json:"content"`
}

func (r *UpdateTaskRequest) Validate() error {
	if r.WorkplaceID == "" {
		return fmt.Errorf("invalid task: workplace_id is required")
	}
	if r.TaskID == "" {
		return fmt.Errorf("invalid task: task_id is required")
	}
	if r.Name == "" {
		return fmt.Errorf("invalid task: name is required")
	}
	return nil
}

// TaskRepository covers the task-detail surface inside a tenant database
type TaskRepository interface {
	GetTask(ctx context.Context, workplaceID string, taskID string) (*Task, error)
	GetTaskDetail(ctx context.Context, workplaceID string, taskID string) (*TaskDetail, error)
	UpdateTask(ctx context.Context, workplaceID string, taskID, name, content string) error

	AddAssignee(ctx context.Context, workplaceID string, assignee *TaskAssignee) error
	RemoveAssignee(ctx context.Context, workplaceID string, assignee *TaskAssignee) error

	CreateComment(ctx context.Context, workplaceID string, comment *Comment) error
	GetComment(ctx context.Context, workplaceID string, commentID string) (*Comment, error)
	DeleteComment(ctx context.Context, workplaceID string, commentID string) error

	CreateTimesheet(ctx context.Context, workplaceID string, timesheet *Timesheet) error
	// GetOpenTimesheet returns the user's most-recently-started entry with no
	// stop time.
	GetOpenTimesheet(ctx context.Context, workplaceID string, userID string) (*Timesheet, error)
	StopTimesheet(ctx context.Context, workplaceID string, timesheetID string, stopTime time.Time, description *string) error
	ListTimesheets(ctx context.Context, workplaceID string, taskID string) ([]*Timesheet, error)
}

// TaskServiceInterface defines task-detail operations
type TaskServiceInterface interface {
	GetTaskDetail(ctx context.Context, workplaceID, taskID string) (*TaskDetail, error)
	UpdateTask(ctx context.Context, req *UpdateTaskRequest) error
	AssignTask(ctx context.Context, workplaceID, taskID, userID string) error
	UnassignTask(ctx context.Context, workplaceID, taskID, userID string) error

	CreateComment(ctx context.Context, workplaceID, taskID, description string) (*Comment, error)
	DeleteComment(ctx context.Context, workplaceID, commentID string) error

	StartTimesheet(ctx context.Context, workplaceID, taskID string) (*Timesheet, error)
	StopTimesheet(ctx context.Context, workplaceID string, description *string) (*Timesheet, error)
	ListTimesheets(ctx context.Context, workplaceID, taskID string) ([]*Timesheet, error)
}

// ErrCommentNotFound is returned when a comment is not found
type ErrCommentNotFound struct {
	Message string
}

func (e *ErrCommentNotFound) Error() string {
	return e.Message
}

// ErrTimesheetNotFound is returned when no matching timesheet exists
type ErrTimesheetNotFound struct {
	Message string
}

func (e *ErrTimesheetNotFound) Error() string {
	return e.Message
}
