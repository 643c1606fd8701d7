package migrations

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workplacehq/workplace/config"
	"github.com/workplacehq/workplace/pkg/logger"
)

// stubConnector hands out a prepared mock DB instead of dialing a real
// workplace database
type stubConnector struct {
	db *sql.DB
}

func (c *stubConnector) connectToWorkplace(cfg *config.DatabaseConfig, workplaceID string) (*sql.DB, error) {
	return c.db, nil
}

func testMigrationConfig() *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{
			User:     "postgres_test",
			Password: "postgres_test",
			Host:     "localhost",
			Port:     5432,
			DBName:   "workplace_test",
			Prefix:   "workplace",
		},
	}
}

func TestGetCurrentDBVersion(t *testing.T) {
	manager := NewManager(logger.NewTestLogger(t))
	ctx := context.Background()

	t.Run("version present", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM settings WHERE key = 'db_version'")).
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("1"))

		version, exists, err := manager.GetCurrentDBVersion(ctx, db)
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, 1.0, version)
	})

	t.Run("no version row", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM settings WHERE key = 'db_version'")).
			WillReturnError(sql.ErrNoRows)

		version, exists, err := manager.GetCurrentDBVersion(ctx, db)
		require.NoError(t, err)
		assert.False(t, exists)
		assert.Equal(t, 0.0, version)
	})

	t.Run("garbage value", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM settings WHERE key = 'db_version'")).
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("not-a-number"))

		_, _, err = manager.GetCurrentDBVersion(ctx, db)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid database version format")
	})
}

func TestSetCurrentDBVersion(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO settings (key, value) VALUES ('db_version', $1)")).
		WithArgs("2").
		WillReturnResult(sqlmock.NewResult(0, 1))

	manager := NewManager(logger.NewTestLogger(t))
	require.NoError(t, manager.SetCurrentDBVersion(context.Background(), db, 2.0))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrationsFirstRun(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM settings WHERE key = 'db_version'")).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO settings (key, value) VALUES ('db_version', $1)")).
		WithArgs("2").
		WillReturnResult(sqlmock.NewResult(0, 1))

	manager := NewManager(logger.NewTestLogger(t))
	require.NoError(t, manager.RunMigrations(context.Background(), testMigrationConfig(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrationsUpToDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM settings WHERE key = 'db_version'")).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("2"))

	manager := NewManager(logger.NewTestLogger(t))
	require.NoError(t, manager.RunMigrations(context.Background(), testMigrationConfig(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrationsExecutesWorkplaceUpdates(t *testing.T) {
	systemDB, systemMock, err := sqlmock.New()
	require.NoError(t, err)
	defer systemDB.Close()

	workplaceDB, workplaceMock, err := sqlmock.New()
	require.NoError(t, err)

	// System database is at v1 and the code is at v2, so V2Migration runs
	systemMock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM settings WHERE key = 'db_version'")).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("1"))
	systemMock.ExpectBegin()
	systemMock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, owner_id, created_at, updated_at FROM workplaces")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "owner_id", "created_at", "updated_at"}).
			AddRow("acme", "Acme Inc", "user1", time.Now(), time.Now()))

	workplaceMock.ExpectBegin()
	workplaceMock.ExpectExec(regexp.QuoteMeta(`ALTER TABLE project_columns ALTER COLUMN "order" TYPE DOUBLE PRECISION`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	workplaceMock.ExpectExec(regexp.QuoteMeta(`ALTER TABLE project_tasks ALTER COLUMN "order" TYPE DOUBLE PRECISION`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	workplaceMock.ExpectCommit()
	workplaceMock.ExpectClose()

	systemMock.ExpectCommit()
	systemMock.ExpectExec(regexp.QuoteMeta("INSERT INTO settings (key, value) VALUES ('db_version', $1)")).
		WithArgs("2").
		WillReturnResult(sqlmock.NewResult(0, 1))

	manager := NewManager(logger.NewTestLogger(t))
	manager.connector = &stubConnector{db: workplaceDB}

	require.NoError(t, manager.RunMigrations(context.Background(), testMigrationConfig(), systemDB))
	assert.NoError(t, systemMock.ExpectationsWereMet())
	assert.NoError(t, workplaceMock.ExpectationsWereMet())
}

func TestRunMigrationsWorkplaceFailureRollsBack(t *testing.T) {
	systemDB, systemMock, err := sqlmock.New()
	require.NoError(t, err)
	defer systemDB.Close()

	workplaceDB, workplaceMock, err := sqlmock.New()
	require.NoError(t, err)

	systemMock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM settings WHERE key = 'db_version'")).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("1"))
	systemMock.ExpectBegin()
	systemMock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, owner_id, created_at, updated_at FROM workplaces")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "owner_id", "created_at", "updated_at"}).
			AddRow("acme", "Acme Inc", "user1", time.Now(), time.Now()))

	workplaceMock.ExpectBegin()
	workplaceMock.ExpectExec(regexp.QuoteMeta(`ALTER TABLE project_columns ALTER COLUMN "order" TYPE DOUBLE PRECISION`)).
		WillReturnError(sql.ErrConnDone)
	workplaceMock.ExpectRollback()
	workplaceMock.ExpectClose()

	systemMock.ExpectRollback()

	manager := NewManager(logger.NewTestLogger(t))
	manager.connector = &stubConnector{db: workplaceDB}

	err = manager.RunMigrations(context.Background(), testMigrationConfig(), systemDB)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workplace migration failed")
	assert.NoError(t, workplaceMock.ExpectationsWereMet())
}
