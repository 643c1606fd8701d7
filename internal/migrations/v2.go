package migrations

import (
	"context"
	"fmt"

	"github.com/workplacehq/workplace/config"
	"github.com/workplacehq/workplace/internal/domain"
)

func init() {
	Register(&V2Migration{})
}

// V2Migration moves board ordering from integer positions to fractional
// keys: the "order" columns on project_columns and project_tasks become
// DOUBLE PRECISION so a task can be dropped between two neighbours without
// renumbering the rest of the column.
type V2Migration struct{}

func (m *V2Migration) GetMajorVersion() float64 {
	return 2.0
}

func (m *V2Migration) HasSystemUpdate() bool {
	return false
}

func (m *V2Migration) HasWorkplaceUpdate() bool {
	return true
}

func (m *V2Migration) ShouldRestartServer() bool {
	return false
}

func (m *V2Migration) UpdateSystem(ctx context.Context, config *config.Config, db DBExecutor) error {
	return nil
}

func (m *V2Migration) UpdateWorkplace(ctx context.Context, config *config.Config, workplace *domain.Workplace, db DBExecutor) error {
	// Existing integer positions are valid fractional keys, so no data
	// rewrite is needed
	_, err := db.ExecContext(ctx, `ALTER TABLE project_columns ALTER COLUMN "order" TYPE DOUBLE PRECISION`)
	if err != nil {
		return fmt.Errorf("failed to convert project_columns.order to double precision: %w", err)
	}

	_, err = db.ExecContext(ctx, `ALTER TABLE project_tasks ALTER COLUMN "order" TYPE DOUBLE PRECISION`)
	if err != nil {
		return fmt.Errorf("failed to convert project_tasks.order to double precision: %w", err)
	}

	return nil
}
