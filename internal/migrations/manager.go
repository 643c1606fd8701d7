package migrations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/workplacehq/workplace/config"
	"github.com/workplacehq/workplace/internal/database"
	"github.com/workplacehq/workplace/internal/domain"
	"github.com/workplacehq/workplace/pkg/logger"
)

// ErrRestartRequired is returned when a migration requires a server restart
var ErrRestartRequired = errors.New("migration completed successfully - server restart required")

// workplaceConnector interface for connecting to workplace databases
type workplaceConnector interface {
	connectToWorkplace(cfg *config.DatabaseConfig, workplaceID string) (*sql.DB, error)
}

// Manager implements MigrationManager
type Manager struct {
	logger    logger.Logger
	connector workplaceConnector
}

// defaultConnector implements workplaceConnector
type defaultConnector struct{}

func (c *defaultConnector) connectToWorkplace(cfg *config.DatabaseConfig, workplaceID string) (*sql.DB, error) {
	db, err := sql.Open("postgres", database.GetWorkplaceDSN(cfg, workplaceID))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to workplace database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping workplace database: %w", err)
	}

	return db, nil
}

// NewManager creates a new migration manager
func NewManager(logger logger.Logger) *Manager {
	return &Manager{
		logger:    logger,
		connector: &defaultConnector{},
	}
}

// GetCurrentDBVersion retrieves the current database version from the settings table
func (m *Manager) GetCurrentDBVersion(ctx context.Context, db *sql.DB) (float64, bool, error) {
	var versionStr string
	err := db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = 'db_version'").Scan(&versionStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get current database version: %w", err)
	}

	// Only the major version is stored
	version, err := strconv.ParseFloat(versionStr, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid database version format '%s': %w", versionStr, err)
	}

	return version, true, nil
}

// SetCurrentDBVersion updates the current database version in the settings table
func (m *Manager) SetCurrentDBVersion(ctx context.Context, db *sql.DB, version float64) error {
	versionStr := fmt.Sprintf("%.0f", version)

	_, err := db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES ('db_version', $1)
		ON CONFLICT (key) DO UPDATE SET
			value = $1,
			updated_at = CURRENT_TIMESTAMP
	`, versionStr)

	if err != nil {
		return fmt.Errorf("failed to set database version to %s: %w", versionStr, err)
	}

	m.logger.WithField("version", versionStr).Info("Database version updated")
	return nil
}

// RunMigrations executes all necessary migrations based on version comparison
func (m *Manager) RunMigrations(ctx context.Context, cfg *config.Config, db *sql.DB) error {
	m.logger.Info("Starting migration process")

	currentDBVersion, versionExists, err := m.GetCurrentDBVersion(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to get current database version: %w", err)
	}

	currentCodeVersion, err := GetCurrentCodeVersion()
	if err != nil {
		return fmt.Errorf("failed to get current code version: %w", err)
	}

	// First run: the schema was just installed at the current version, so
	// only record it
	if !versionExists {
		m.logger.WithField("code_version", fmt.Sprintf("%.0f", currentCodeVersion)).Info("First run detected, initializing database version")
		if err := m.SetCurrentDBVersion(ctx, db, currentCodeVersion); err != nil {
			return fmt.Errorf("failed to initialize database version: %w", err)
		}
		return nil
	}

	m.logger.WithField("db_version", fmt.Sprintf("%.0f", currentDBVersion)).
		WithField("code_version", fmt.Sprintf("%.0f", currentCodeVersion)).
		Info("Version comparison")

	if currentDBVersion >= currentCodeVersion {
		m.logger.Info("Database is up to date, no migrations needed")
		return nil
	}

	registeredMigrations := GetRegisteredMigrations()

	var migrationsToRun []MajorMigrationInterface
	for _, migration := range registeredMigrations {
		migrationVersion := migration.GetMajorVersion()
		if migrationVersion > currentDBVersion && migrationVersion <= currentCodeVersion {
			migrationsToRun = append(migrationsToRun, migration)
		}
	}

	if len(migrationsToRun) == 0 {
		m.logger.Info("No migrations to run")
		if err := m.SetCurrentDBVersion(ctx, db, currentCodeVersion); err != nil {
			return fmt.Errorf("failed to update database version: %w", err)
		}
		return nil
	}

	m.logger.WithField("count", len(migrationsToRun)).Info("Migrations to execute")

	requiresRestart := false
	for _, migration := range migrationsToRun {
		if err := m.executeMigration(ctx, cfg, db, migration); err != nil {
			return fmt.Errorf("migration failed for version %.0f: %w", migration.GetMajorVersion(), err)
		}
		if migration.ShouldRestartServer() {
			requiresRestart = true
		}
	}

	if err := m.SetCurrentDBVersion(ctx, db, currentCodeVersion); err != nil {
		return fmt.Errorf("failed to update database version after migrations: %w", err)
	}

	m.logger.WithField("version", fmt.Sprintf("%.0f", currentCodeVersion)).Info("Migration process completed successfully")

	if requiresRestart {
		m.logger.Info("Migrations completed - server restart required to reload configuration")
		return ErrRestartRequired
	}

	return nil
}

// executeMigration runs a single migration: the system update inside one
// transaction on the system database, then each workplace update inside its
// own transaction on that workplace's database
func (m *Manager) executeMigration(ctx context.Context, cfg *config.Config, db *sql.DB, migration MajorMigrationInterface) error {
	version := migration.GetMajorVersion()
	m.logger.WithField("version", fmt.Sprintf("%.0f", version)).Info("Executing migration")

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if migration.HasSystemUpdate() {
		if err := migration.UpdateSystem(ctx, cfg, tx); err != nil {
			return fmt.Errorf("system migration failed: %w", err)
		}
	}

	if migration.HasWorkplaceUpdate() {
		workplaces, err := m.getAllWorkplaces(ctx, db)
		if err != nil {
			return fmt.Errorf("failed to get workplaces: %w", err)
		}

		for _, workplace := range workplaces {
			m.logger.WithField("workplace", workplace.ID).
				WithField("version", fmt.Sprintf("%.0f", version)).
				Debug("Executing workplace migration")

			workplaceDB, err := m.connector.connectToWorkplace(&cfg.Database, workplace.ID)
			if err != nil {
				return fmt.Errorf("failed to connect to workplace database %s: %w", workplace.ID, err)
			}

			workplaceTx, err := workplaceDB.BeginTx(ctx, nil)
			if err != nil {
				_ = workplaceDB.Close()
				return fmt.Errorf("failed to start workplace transaction for %s: %w", workplace.ID, err)
			}

			migrationErr := migration.UpdateWorkplace(ctx, cfg, &workplace, workplaceTx)
			if migrationErr != nil {
				_ = workplaceTx.Rollback()
				_ = workplaceDB.Close()
				return fmt.Errorf("workplace migration failed for workplace %s: %w", workplace.ID, migrationErr)
			}

			if err := workplaceTx.Commit(); err != nil {
				_ = workplaceDB.Close()
				return fmt.Errorf("failed to commit workplace migration for %s: %w", workplace.ID, err)
			}

			_ = workplaceDB.Close()
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration transaction: %w", err)
	}

	m.logger.WithField("version", fmt.Sprintf("%.0f", version)).Info("Migration completed successfully")
	return nil
}

// getAllWorkplaces retrieves all workplaces from the system database
func (m *Manager) getAllWorkplaces(ctx context.Context, db *sql.DB) ([]domain.Workplace, error) {
	rows, err := db.QueryContext(ctx, "SELECT id, name, owner_id, created_at, updated_at FROM workplaces")
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var workplaces []domain.Workplace
	for rows.Next() {
		var workplace domain.Workplace
		err := rows.Scan(
			&workplace.ID,
			&workplace.Name,
			&workplace.OwnerID,
			&workplace.CreatedAt,
			&workplace.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		workplaces = append(workplaces, workplace)
	}

	return workplaces, rows.Err()
}
