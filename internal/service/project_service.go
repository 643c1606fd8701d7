package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/workplacehq/workplace/internal/domain"
	"github.com/workplacehq/workplace/pkg/logger"
	"github.com/workplacehq/workplace/pkg/tracing"
)

type ProjectService struct {
	repo        domain.ProjectRepository
	authService domain.AuthService
	logger      logger.Logger
	tracer      tracing.Tracer
}

type ProjectServiceConfig struct {
	Repository  domain.ProjectRepository
	AuthService domain.AuthService
	Logger      logger.Logger
	Tracer      tracing.Tracer
}

func NewProjectService(cfg ProjectServiceConfig) *ProjectService {
	return &ProjectService{
		repo:        cfg.Repository,
		authService: cfg.AuthService,
		logger:      cfg.Logger,
		tracer:      cfg.Tracer,
	}
}

var _ domain.ProjectServiceInterface = (*ProjectService)(nil)

// CreateProject creates a project owned by the caller, optionally seeded
// with the To Do / In Progress / Done columns in one transaction.
func (s *ProjectService) CreateProject(ctx context.Context, req *domain.CreateProjectRequest) (*domain.Project, error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "ProjectService", "CreateProject")
	defer func() {
		s.tracer.EndSpan(span, nil)
	}()

	if err := req.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	ctx, user, err := s.authService.AuthenticateUserForWorkplace(ctx, req.WorkplaceID)
	if err != nil {
		return nil, err
	}

	project := &domain.Project{
		ID:      uuid.New().String(),
		Name:    req.Name,
		OwnerID: user.ID,
	}

	if req.WithDefaultColumns {
		columns := domain.DefaultColumns(project.ID, func() string { return uuid.New().String() })
		if err := s.repo.CreateWithDefaultColumns(ctx, req.WorkplaceID, project, columns); err != nil {
			s.tracer.MarkSpanError(ctx, err)
			return nil, fmt.Errorf("failed to create project: %w", err)
		}
		return project, nil
	}

	if err := s.repo.Create(ctx, req.WorkplaceID, project); err != nil {
		s.tracer.MarkSpanError(ctx, err)
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

func (s *ProjectService) GetProject(ctx context.Context, workplaceID, id string) (*domain.Project, error) {
	ctx, _, err := s.authService.AuthenticateUserForWorkplace(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, workplaceID, id)
}

func (s *ProjectService) ListProjects(ctx context.Context, workplaceID string) ([]*domain.Project, error) {
	ctx, _, err := s.authService.AuthenticateUserForWorkplace(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, workplaceID)
}

// UpdateProject renames a project. Owner only.
func (s *ProjectService) UpdateProject(ctx context.Context, workplaceID, id, name string) (*domain.Project, error) {
	ctx, user, err := s.authService.AuthenticateUserForWorkplace(ctx, workplaceID)
	if err != nil {
		return nil, err
	}

	project, err := s.repo.GetByID(ctx, workplaceID, id)
	if err != nil {
		return nil, err
	}
	if project.OwnerID != user.ID {
		return nil, domain.ErrUnauthorized
	}

	project.Name = name
	if err := project.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, workplaceID, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

// DeleteProject removes the project and everything under it. Owner only.
func (s *ProjectService) DeleteProject(ctx context.Context, workplaceID, id string) error {
	ctx, user, err := s.authService.AuthenticateUserForWorkplace(ctx, workplaceID)
	if err != nil {
		return err
	}

	project, err := s.repo.GetByID(ctx, workplaceID, id)
	if err != nil {
		return err
	}
	if project.OwnerID != user.ID {
		return domain.ErrUnauthorized
	}

	if err := s.repo.Delete(ctx, workplaceID, id); err != nil {
		s.logger.WithField("workplace_id", workplaceID).WithField("project_id", id).Error(fmt.Sprintf("Failed to delete project: %v", err))
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
