package migrations

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workplacehq/workplace/internal/domain"
)

func TestV2MigrationMetadata(t *testing.T) {
	migration := &V2Migration{}

	assert.Equal(t, 2.0, migration.GetMajorVersion())
	assert.False(t, migration.HasSystemUpdate())
	assert.True(t, migration.HasWorkplaceUpdate())
	assert.False(t, migration.ShouldRestartServer())

	registered, ok := GetRegisteredMigration(2.0)
	assert.True(t, ok)
	assert.IsType(t, &V2Migration{}, registered)
}

func TestV2MigrationUpdateWorkplace(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`ALTER TABLE project_columns ALTER COLUMN "order" TYPE DOUBLE PRECISION`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`ALTER TABLE project_tasks ALTER COLUMN "order" TYPE DOUBLE PRECISION`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	migration := &V2Migration{}
	workplace := &domain.Workplace{ID: "acme", Name: "Acme Inc"}
	require.NoError(t, migration.UpdateWorkplace(context.Background(), testMigrationConfig(), workplace, db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestV2MigrationUpdateSystemIsNoop(t *testing.T) {
	migration := &V2Migration{}
	assert.NoError(t, migration.UpdateSystem(context.Background(), testMigrationConfig(), nil))
}
