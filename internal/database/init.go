package database

import (
	"database/sql"
	"fmt"

	"github.com/workplacehq/workplace/internal/database/schema"
)

// InitializeDatabase creates all necessary system database tables if they don't exist
func InitializeDatabase(db *sql.DB) error {
	// Run all table creation queries
	for _, query := range schema.TableDefinitions {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}

// InitializeWorkplaceDatabase creates the necessary tables for a workplace database
func InitializeWorkplaceDatabase(db *sql.DB) error {
	for _, query := range schema.WorkplaceTableDefinitions {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create workplace table: %w", err)
		}
	}

	return nil
}

// CleanDatabase drops all system tables in reverse order, for tests
func CleanDatabase(db *sql.DB) error {
	for i := len(schema.TableNames) - 1; i >= 0; i-- {
		query := fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", schema.TableNames[i])
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", schema.TableNames[i], err)
		}
	}

	return nil
}
