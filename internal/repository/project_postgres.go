package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/workplacehq/workplace/internal/domain"
)

type projectRepository struct {
	workplaceRepo domain.WorkplaceRepository
}

// NewProjectRepository creates a new PostgreSQL project repository
func NewProjectRepository(workplaceRepo domain.WorkplaceRepository) domain.ProjectRepository {
	return &projectRepository{
		workplaceRepo: workplaceRepo,
	}
}

func (r *projectRepository) Create(ctx context.Context, workplaceID string, project *domain.Project) error {
	workplaceDB, err := r.workplaceRepo.GetConnection(ctx, workplaceID)
	if err != nil {
		return fmt.Errorf("failed to get workplace connection: %w", err)
	}

	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	query := `
		INSERT INTO projects (id, name, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = workplaceDB.ExecContext(ctx, query,
		project.ID,
		project.Name,
		project.OwnerID,
		project.CreatedAt,
		project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// CreateWithDefaultColumns inserts the project and its starter columns in a
// single transaction so a half-seeded board is never visible.
func (r *projectRepository) CreateWithDefaultColumns(ctx context.Context, workplaceID string, project *domain.Project, columns []*domain.Column) error {
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	return r.workplaceRepo.WithWorkplaceTransaction(ctx, workplaceID, func(tx *sql.Tx) error {
		projectQuery := `
			INSERT INTO projects (id, name, owner_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5)
		`
		_, err := tx.ExecContext(ctx, projectQuery,
			project.ID,
			project.Name,
			project.OwnerID,
			project.CreatedAt,
			project.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}

		columnQuery := `
			INSERT INTO project_columns (id, project_id, name, "order")
			VALUES ($1, $2, $3, $4)
		`
		for _, column := range columns {
			_, err := tx.ExecContext(ctx, columnQuery,
				column.ID,
				column.ProjectID,
				column.Name,
				column.Order,
			)
			if err != nil {
				return fmt.Errorf("failed to create default column: %w", err)
			}
		}
		return nil
	})
}

func (r *projectRepository) GetByID(ctx context.Context, workplaceID string, id string) (*domain.Project, error) {
	workplaceDB, err := r.workplaceRepo.GetConnection(ctx, workplaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workplace connection: %w", err)
	}

	query := `
		SELECT id, name, owner_id, created_at, updated_at
		FROM projects
		WHERE id = $1
	`
	var project domain.Project
	err = workplaceDB.QueryRowContext(ctx, query, id).Scan(
		&project.ID,
		&project.Name,
		&project.OwnerID,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrProjectNotFound{Message: "project not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &project, nil
}

func (r *projectRepository) List(ctx context.Context, workplaceID string) ([]*domain.Project, error) {
	workplaceDB, err := r.workplaceRepo.GetConnection(ctx, workplaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workplace connection: %w", err)
	}

	query := `
		SELECT id, name, owner_id, created_at, updated_at
		FROM projects
		ORDER BY created_at DESC
	`
	rows, err := workplaceDB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		var project domain.Project
		err := rows.Scan(
			&project.ID,
			&project.Name,
			&project.OwnerID,
			&project.CreatedAt,
			&project.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, &project)
	}
	return projects, rows.Err()
}

func (r *projectRepository) Update(ctx context.Context, workplaceID string, project *domain.Project) error {
	workplaceDB, err := r.workplaceRepo.GetConnection(ctx, workplaceID)
	if err != nil {
		return fmt.Errorf("failed to get workplace connection: %w", err)
	}

	project.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE projects
		SET name = $1, updated_at = $2
		WHERE id = $3
	`
	result, err := workplaceDB.ExecContext(ctx, query,
		project.Name,
		project.UpdatedAt,
		project.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrProjectNotFound{Message: "project not found"}
	}
	return nil
}

// Delete removes the project and everything hanging off it in one
// transaction.
func (r *projectRepository) Delete(ctx context.Context, workplaceID string, id string) error {
	return r.workplaceRepo.WithWorkplaceTransaction(ctx, workplaceID, func(tx *sql.Tx) error {
		cleanupQueries := []string{
			`DELETE FROM task_timesheets WHERE task_id IN (SELECT id FROM project_tasks WHERE project_id = $1)`,
			`DELETE FROM task_comments WHERE task_id IN (SELECT id FROM project_tasks WHERE project_id = $1)`,
			`DELETE FROM task_assignees WHERE task_id IN (SELECT id FROM project_tasks WHERE project_id = $1)`,
			`DELETE FROM project_tasks WHERE project_id = $1`,
			`DELETE FROM project_columns WHERE project_id = $1`,
		}
		for _, q := range cleanupQueries {
			if _, err := tx.ExecContext(ctx, q, id); err != nil {
				return fmt.Errorf("failed to delete project data: %w", err)
			}
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}
		if rows == 0 {
			return &domain.ErrProjectNotFound{Message: "project not found"}
		}
		return nil
	})
}
