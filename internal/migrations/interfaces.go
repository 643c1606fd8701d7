package migrations

import (
	"context"
	"database/sql"

	"github.com/workplacehq/workplace/config"
	"github.com/workplacehq/workplace/internal/domain"
)

// DBExecutor is the query surface migrations run against. Both *sql.DB
// and *sql.Tx satisfy it, so the same migration code works inside the
// manager's transactions.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// MajorMigrationInterface is implemented once per major version. A
// migration declares which side of the split schema it touches: the
// shared system database, every tenant workplace database, or both.
type MajorMigrationInterface interface {
	GetMajorVersion() float64
	HasSystemUpdate() bool
	HasWorkplaceUpdate() bool
	ShouldRestartServer() bool
	UpdateSystem(ctx context.Context, config *config.Config, db DBExecutor) error
	UpdateWorkplace(ctx context.Context, config *config.Config, workplace *domain.Workplace, db DBExecutor) error
}

// MigrationManager compares the stored db_version against the compiled
// code version and applies whatever falls in between.
type MigrationManager interface {
	GetCurrentDBVersion(ctx context.Context, db *sql.DB) (version float64, exists bool, err error)
	SetCurrentDBVersion(ctx context.Context, db *sql.DB, version float64) error
	RunMigrations(ctx context.Context, config *config.Config, db *sql.DB) error
}

// MigrationRegistry holds the migrations known to this binary
type MigrationRegistry interface {
	Register(migration MajorMigrationInterface)
	GetMigrations() []MajorMigrationInterface
	GetMigration(version float64) (MajorMigrationInterface, bool)
}
