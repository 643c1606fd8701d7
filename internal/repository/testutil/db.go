// Package testutil provides shared fixtures for repository tests.
package testutil

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

// SetupMockDB opens a sqlmock-backed connection. The returned cleanup
// closes the handle; expectation checks stay with the caller.
func SetupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err, "failed to open sqlmock connection")

	return db, mock, func() {
		_ = db.Close()
	}
}
