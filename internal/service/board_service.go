package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/workplacehq/workplace/internal/domain"
	"github.com/workplacehq/workplace/pkg/logger"
	"github.com/workplacehq/workplace/pkg/tracing"
)

// BoardService serves the merged board view and applies mutations. Each
// mutation is registered as a pending overlay before the database write and
// resolved afterwards, so concurrent readers see the optimistic state while
// the write is in flight and fall back to confirmed state once it settles,
// whether it succeeded or not.
type BoardService struct {
	repo        domain.BoardRepository
	registry    *domain.PendingMutationRegistry
	authService domain.AuthService
	logger      logger.Logger
	tracer      tracing.Tracer
}

type BoardServiceConfig struct {
	Repository  domain.BoardRepository
	Registry    *domain.PendingMutationRegistry
	AuthService domain.AuthService
	Logger      logger.Logger
	Tracer      tracing.Tracer
}

func NewBoardService(cfg BoardServiceConfig) *BoardService {
	registry := cfg.Registry
	if registry == nil {
		registry = domain.NewPendingMutationRegistry()
	}
	return &BoardService{
		repo:        cfg.Repository,
		registry:    registry,
		authService: cfg.AuthService,
		logger:      cfg.Logger,
		tracer:      cfg.Tracer,
	}
}

var _ domain.BoardServiceInterface = (*BoardService)(nil)

// GetBoard returns the confirmed board with all in-flight mutations overlaid
func (s *BoardService) GetBoard(ctx context.Context, workplaceID, projectID string) (*domain.Board, error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "BoardService", "GetBoard")
	defer func() {
		s.tracer.EndSpan(span, nil)
	}()

	ctx, _, err := s.authService.AuthenticateUserForWorkplace(ctx, workplaceID)
	if err != nil {
		return nil, err
	}

	confirmed, err := s.repo.GetBoard(ctx, workplaceID, projectID)
	if err != nil {
		s.tracer.MarkSpanError(ctx, err)
		return nil, err
	}

	return domain.MergeBoard(confirmed, s.registry.Pending(workplaceID, projectID)), nil
}

// ApplyMutation registers the mutation as a pending overlay, performs the
// database write and resolves the overlay. A failed write resolves too: the
// overlay disappears and readers revert to the confirmed state.
func (s *BoardService) ApplyMutation(ctx context.Context, workplaceID, projectID string, mutation domain.BoardMutation) error {
	ctx, span := s.tracer.StartServiceSpan(ctx, "BoardService", "ApplyMutation")
	defer func() {
		s.tracer.EndSpan(span, nil)
	}()

	ctx, user, err := s.authService.AuthenticateUserForWorkplace(ctx, workplaceID)
	if err != nil {
		return err
	}

	s.registry.Register(workplaceID, projectID, mutation)
	defer s.registry.Resolve(workplaceID, projectID, mutation.Token())

	switch m := mutation.(type) {
	case domain.CreateColumnMutation:
		column := &domain.Column{
			ID:        m.ID,
			ProjectID: m.ProjectID,
			Name:      m.Name,
			Order:     m.Order,
		}
		if column.ID == "" {
			column.ID = uuid.New().String()
		}
		if column.ProjectID == "" {
			column.ProjectID = projectID
		}
		if column.Order == 0 {
			count, err := s.repo.CountColumns(ctx, workplaceID, projectID)
			if err != nil {
				return fmt.Errorf("failed to count columns: %w", err)
			}
			column.Order = domain.NextColumnOrder(count)
		}
		if err := column.Validate(); err != nil {
			return domain.NewValidationError(err.Error())
		}
		if err := s.repo.CreateColumn(ctx, workplaceID, column); err != nil {
			s.tracer.MarkSpanError(ctx, err)
			return fmt.Errorf("failed to create column: %w", err)
		}

	case domain.RenameColumnMutation:
		if err := s.repo.RenameColumn(ctx, workplaceID, m.ID, m.Name); err != nil {
			s.tracer.MarkSpanError(ctx, err)
			return fmt.Errorf("failed to rename column: %w", err)
		}

	case domain.RemoveColumnMutation:
		if err := s.repo.DeleteColumn(ctx, workplaceID, m.ID); err != nil {
			s.tracer.MarkSpanError(ctx, err)
			return fmt.Errorf("failed to delete column: %w", err)
		}

	case domain.CreateTaskMutation:
		task := m.Task
		if task.ProjectID == "" {
			task.ProjectID = projectID
		}
		if task.OwnerID == "" {
			task.OwnerID = user.ID
		}
		if task.CreatedAt.IsZero() {
			task.CreatedAt = time.Now().UTC()
		}
		if task.Order == 0 {
			order, err := s.orderAtColumnEnd(ctx, workplaceID, projectID, task.ColumnID)
			if err != nil {
				return err
			}
			task.Order = order
		}
		if err := task.Validate(); err != nil {
			return domain.NewValidationError(err.Error())
		}
		if err := s.repo.CreateTask(ctx, workplaceID, &task); err != nil {
			s.tracer.MarkSpanError(ctx, err)
			return fmt.Errorf("failed to create task: %w", err)
		}

	case domain.MoveTaskMutation:
		if m.Task.ColumnID == "" {
			return domain.NewValidationError("task column_id is required")
		}
		if err := s.repo.MoveTask(ctx, workplaceID, m.Task.ID, m.Task.ColumnID, m.Task.Order); err != nil {
			s.tracer.MarkSpanError(ctx, err)
			return fmt.Errorf("failed to move task: %w", err)
		}

	case domain.RemoveTaskMutation:
		if err := s.repo.DeleteTask(ctx, workplaceID, m.ID); err != nil {
			s.tracer.MarkSpanError(ctx, err)
			return fmt.Errorf("failed to delete task: %w", err)
		}

	default:
		return &domain.ErrUnknownMutationKind{Kind: fmt.Sprintf("%T", mutation)}
	}

	return nil
}

// orderAtColumnEnd reads the confirmed board and computes the key for
// appending a task at the bottom of a column.
func (s *BoardService) orderAtColumnEnd(ctx context.Context, workplaceID, projectID, columnID string) (float64, error) {
	board, err := s.repo.GetBoard(ctx, workplaceID, projectID)
	if err != nil {
		return 0, fmt.Errorf("failed to get board: %w", err)
	}
	for _, column := range board.Columns {
		if column.ID != columnID {
			continue
		}
		if len(column.Tasks) == 0 {
			return domain.OrderAtEnd(0, true), nil
		}
		last := column.Tasks[len(column.Tasks)-1].Order
		return domain.OrderAtEnd(last, false), nil
	}
	return 0, &domain.ErrColumnNotFound{Message: "column not found"}
}
