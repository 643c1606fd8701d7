package service

import (
	"context"
	"fmt"
	"time"

	"github.com/workplacehq/workplace/internal/domain"
	"github.com/workplacehq/workplace/pkg/logger"
	"github.com/workplacehq/workplace/pkg/tracing"
)

type TaskService struct {
	repo        domain.TaskRepository
	authService domain.AuthService
	logger      logger.Logger
	tracer      tracing.Tracer
}

type TaskServiceConfig struct {
	Repository  domain.TaskRepository
	AuthService domain.AuthService
	Logger      logger.Logger
	Tracer      tracing.Tracer
}

func NewTaskService(cfg TaskServiceConfig) *TaskService {
	return &TaskService{
		repo:        cfg.Repository,
		authService: cfg.AuthService,
		logger:      cfg.Logger,
		tracer:      cfg.Tracer,
	}
}

var _ domain.TaskServiceInterface = (*TaskService)(nil)

func (s *TaskService) GetTaskDetail(ctx context.Context, workplaceID, taskID string) (*domain.TaskDetail, error) {
	ctx, _, err := s.authService.AuthenticateUserForWorkplace(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetTaskDetail(ctx, workplaceID, taskID)
}

func (s *TaskService) UpdateTask(ctx context.Context, req *domain.UpdateTaskRequest) error {
	if err := req.Validate(); err != nil {
		return domain.NewValidationError(err.Error())
	}

	ctx, _, err := s.authService.AuthenticateUserForWorkplace(ctx, req.WorkplaceID)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateTask(ctx, req.WorkplaceID, req.TaskID, req.Name, req.Content); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

func (s *TaskService) AssignTask(ctx context.Context, workplaceID, taskID, userID string) error {
	ctx, _, err := s.authService.AuthenticateUserForWorkplace(ctx, workplaceID)
	if err != nil {
		return err
	}

	assignee := &domain.TaskAssignee{TaskID: taskID, UserID: userID}
	if err := s.repo.AddAssignee(ctx, workplaceID, assignee); err != nil {
		return fmt.Errorf("failed to assign task: %w", err)
	}
	return nil
}

func (s *TaskService) UnassignTask(ctx context.Context, workplaceID, taskID, userID string) error {
	ctx, _, err := s.authService.AuthenticateUserForWorkplace(ctx, workplaceID)
	if err != nil {
		return err
	}

	assignee := &domain.TaskAssignee{TaskID: taskID, UserID: userID}
	if err := s.repo.RemoveAssignee(ctx, workplaceID, assignee); err != nil {
		return fmt.Errorf("failed to unassign task: %w", err)
	}
	return nil
}

// CreateComment attaches a comment to a task, authored by the caller
func (s *TaskService) CreateComment(ctx context.Context, workplaceID, taskID, description string) (*domain.Comment, error) {
	ctx, user, err := s.authService.AuthenticateUserForWorkplace(ctx, workplaceID)
	if err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		TaskID:      taskID,
		UserID:      user.ID,
		Description: description,
	}
	if err := comment.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	if err := s.repo.CreateComment(ctx, workplaceID, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

// DeleteComment removes a comment. Only its author may delete it.
func (s *TaskService) DeleteComment(ctx context.Context, workplaceID, commentID string) error {
	ctx, user, err := s.authService.AuthenticateUserForWorkplace(ctx, workplaceID)
	if err != nil {
		return err
	}

	comment, err := s.repo.GetComment(ctx, workplaceID, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != user.ID {
		return domain.ErrUnauthorized
	}

	if err := s.repo.DeleteComment(ctx, workplaceID, commentID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

// StartTimesheet opens a new time-tracking entry on the task for the caller.
// Starting does not close an already open entry; see StopTimesheet.
func (s *TaskService) StartTimesheet(ctx context.Context, workplaceID, taskID string) (*domain.Timesheet, error) {
	ctx, user, err := s.authService.AuthenticateUserForWorkplace(ctx, workplaceID)
	if err != nil {
		return nil, err
	}

	timesheet := &domain.Timesheet{
		TaskID:    taskID,
		UserID:    user.ID,
		StartTime: time.Now().UTC(),
	}
	if err := s.repo.CreateTimesheet(ctx, workplaceID, timesheet); err != nil {
		return nil, fmt.Errorf("failed to create timesheet: %w", err)
	}
	return timesheet, nil
}

// StopTimesheet closes the caller's most-recently-started open entry,
// regardless of which task it belongs to. With two overlapping open entries
// the older one stays open until stopped again.
func (s *TaskService) StopTimesheet(ctx context.Context, workplaceID string, description *string) (*domain.Timesheet, error) {
	ctx, user, err := s.authService.AuthenticateUserForWorkplace(ctx, workplaceID)
	if err != nil {
		return nil, err
	}

	timesheet, err := s.repo.GetOpenTimesheet(ctx, workplaceID, user.ID)
	if err != nil {
		return nil, err
	}

	stopTime := time.Now().UTC()
	if err := s.repo.StopTimesheet(ctx, workplaceID, timesheet.ID, stopTime, description); err != nil {
		return nil, fmt.Errorf("failed to stop timesheet: %w", err)
	}

	timesheet.StopTime = &stopTime
	if description != nil {
		timesheet.Description = description
	}
	return timesheet, nil
}

func (s *TaskService) ListTimesheets(ctx context.Context, workplaceID, taskID string) ([]*domain.Timesheet, error) {
	ctx, _, err := s.authService.AuthenticateUserForWorkplace(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListTimesheets(ctx, workplaceID, taskID)
}
