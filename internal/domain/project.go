package domain

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -destination mocks/mock_project_repository.go -package mocks github.com/workplacehq/workplace/internal/domain ProjectRepository
//go:generate mockgen -destination mocks/mock_project_service.go -package mocks github.com/workplacehq/workplace/internal/domain ProjectServiceInterface

// Project is a kanban board living inside a tenant database. Only the owner
// may manage settings and columns.
type Project struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	OwnerID   string    `json:"owner_id" db:"owner_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func (p *Project) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("invalid project: id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("invalid project: name is required")
	}
	if len(p.Name) > 255 {
		return fmt.Errorf("invalid project: name length must be between 1 and 255")
	}
	if p.OwnerID == "" {
		return fmt.Errorf("invalid project: owner_id is required")
	}
	return nil
}

type CreateProjectRequest struct {
	WorkplaceID        string `json:"workplace_id"`
	Name               string `json:"name"`
	WithDefaultColumns bool   `json:"with_default_columns"`
}

func (r *CreateProjectRequest) Validate() error {
	if r.WorkplaceID == "" {
		return fmt.Errorf("invalid project: workplace_id is required")
	}
	if r.Name == "" {
		return fmt.Errorf("invalid project: name is required")
	}
	return nil
}

type ProjectRepository interface {
	Create(ctx context.Context, workplaceID string, project *Project) error
	// CreateWithDefaultColumns inserts the project and its starter columns in
	// a single transaction.
	CreateWithDefaultColumns(ctx context.Context, workplaceID string, project *Project, columns []*Column) error
	GetByID(ctx context.Context, workplaceID string, id string) (*Project, error)
	List(ctx context.Context, workplaceID string) ([]*Project, error)
	Update(ctx context.Context, workplaceID string, project *Project) error
	Delete(ctx context.Context, workplaceID string, id string) error
}

type ProjectServiceInterface interface {
	CreateProject(ctx context.Context, req *CreateProjectRequest) (*Project, error)
	GetProject(ctx context.Context, workplaceID, id string) (*Project, error)
	ListProjects(ctx context.Context, workplaceID string) ([]*Project, error)
	UpdateProject(ctx context.Context, workplaceID, id, name string) (*Project, error)
	DeleteProject(ctx context.Context, workplaceID, id string) error
}

// ErrProjectNotFound is returned when a project is not found
type ErrProjectNotFound struct {
	Message string
}

func (e *ErrProjectNotFound) Error() string {
	return e.Message
}

// DefaultColumns returns the starter columns seeded when a project is
// created with the default layout.
func DefaultColumns(projectID string, newID func() string) []*Column {
	names := []string{"To Do", "In Progress", "Done"}
	columns := make([]*Column, 0, len(names))
	for i, name := range names {
		columns = append(columns, &Column{
			ID:        newID(),
			ProjectID: projectID,
			Name:      name,
			Order:     float64(i + 1),
		})
	}
	return columns
}
