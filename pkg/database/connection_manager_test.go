package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/workplacehq/workplace/config"
)

func TestGetConnectionManager_NotInitialized(t *testing.T) {
	defer ResetConnectionManager()
	ResetConnectionManager()

	_, err := GetConnectionManager()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestResetConnectionManager(t *testing.T) {
	defer ResetConnectionManager()

	// Reset should clear the singleton
	ResetConnectionManager()

	_, err := GetConnectionManager()
	assert.Error(t, err)
}

func TestConnectionLimitError(t *testing.T) {
	err := &ConnectionLimitError{
		MaxConnections:     100,
		CurrentConnections: 95,
		WorkplaceID:        "wp123",
	}

	assert.Contains(t, err.Error(), "connection limit reached")
	assert.Contains(t, err.Error(), "95/100")
	assert.Contains(t, err.Error(), "wp123")
}

func TestIsConnectionLimitError(t *testing.T) {
	t.Run("identifies ConnectionLimitError", func(t *testing.T) {
		err := &ConnectionLimitError{
			MaxConnections:     100,
			CurrentConnections: 95,
			WorkplaceID:        "wp123",
		}

		assert.True(t, IsConnectionLimitError(err))
	})

	t.Run("returns false for other errors", func(t *testing.T) {
		err := assert.AnError

		assert.False(t, IsConnectionLimitError(err))
	})
}

func TestConnectionPoolStats(t *testing.T) {
	stats := ConnectionPoolStats{
		OpenConnections: 5,
		InUse:           2,
		Idle:            3,
		MaxOpen:         10,
		WaitCount:       5,
		WaitDuration:    100 * time.Millisecond,
	}

	assert.Equal(t, 5, stats.OpenConnections)
	assert.Equal(t, 2, stats.InUse)
	assert.Equal(t, 3, stats.Idle)
	assert.Equal(t, 10, stats.MaxOpen)
}

func TestConnectionStats(t *testing.T) {
	stats := ConnectionStats{
		MaxConnections:           100,
		MaxConnectionsPerDB:      3,
		TotalOpenConnections:     15,
		TotalInUseConnections:    8,
		TotalIdleConnections:     7,
		ActiveWorkplaceDatabases: 5,
		WorkplacePools:           make(map[string]ConnectionPoolStats),
	}

	assert.Equal(t, 100, stats.MaxConnections)
	assert.Equal(t, 3, stats.MaxConnectionsPerDB)
	assert.Equal(t, 15, stats.TotalOpenConnections)
	assert.Equal(t, 8, stats.TotalInUseConnections)
	assert.Equal(t, 7, stats.TotalIdleConnections)
	assert.Equal(t, 5, stats.ActiveWorkplaceDatabases)
}

// Helper function for tests
func createTestConfig() *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			Prefix:   "test",
			SSLMode:  "disable",

			MaxConnections:        100,
			MaxConnectionsPerDB:   3,
			ConnectionMaxLifetime: 10 * time.Minute,
			ConnectionMaxIdleTime: 5 * time.Minute,
		},
	}
}
