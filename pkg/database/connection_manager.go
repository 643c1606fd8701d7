package database

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/workplacehq/workplace/config"
	"github.com/workplacehq/workplace/internal/database"
)

// ConnectionManager routes workplace IDs to live connection pools. Pools are
// created lazily, bounded by a total connection budget, and evicted LRU when
// the budget is reached, so the number of open tenant pools never grows
// without bound.
type ConnectionManager interface {
	// GetSystemConnection returns the system database connection
	GetSystemConnection() *sql.DB

	// GetWorkplaceConnection returns a connection pool for a workplace
	// database. The returned *sql.DB is a pool; repeated calls for the same
	// ID are idempotent in the data they expose.
	GetWorkplaceConnection(ctx context.Context, workplaceID string) (*sql.DB, error)

	// CloseWorkplaceConnection closes a workplace database connection pool
	CloseWorkplaceConnection(workplaceID string) error

	// GetStats returns connection statistics
	GetStats() ConnectionStats

	// Close closes all connections
	Close() error
}

// ConnectionStats provides visibility into connection usage
type ConnectionStats struct {
	MaxConnections           int                            `json:"max_connections"`
	MaxConnectionsPerDB      int                            `json:"max_connections_per_db"`
	SystemConnections        ConnectionPoolStats            `json:"system_connections"`
	WorkplacePools           map[string]ConnectionPoolStats `json:"-"`
	TotalOpenConnections     int                            `json:"total_open_connections"`
	TotalInUseConnections    int                            `json:"total_in_use_connections"`
	TotalIdleConnections     int                            `json:"total_idle_connections"`
	ActiveWorkplaceDatabases int                            `json:"-"`
}

// ConnectionPoolStats provides stats for a single connection pool
type ConnectionPoolStats struct {
	OpenConnections int           `json:"open_connections"`
	InUse           int           `json:"in_use"`
	Idle            int           `json:"idle"`
	MaxOpen         int           `json:"max_open"`
	WaitCount       int64         `json:"wait_count"`
	WaitDuration    time.Duration `json:"wait_duration"`
}

// DSNResolver maps a workplace ID to the DSN of its tenant database
type DSNResolver func(workplaceID string) string

// connectionManager implements ConnectionManager
type connectionManager struct {
	mu                  sync.RWMutex
	config              *config.Config
	systemDB            *sql.DB
	resolveDSN          DSNResolver
	workplacePools      map[string]*sql.DB   // workplaceID -> connection pool
	poolAccessTimes     map[string]time.Time // workplaceID -> last access time
	maxConnections      int
	maxConnectionsPerDB int
}

var (
	instance     *connectionManager
	instanceOnce sync.Once
	instanceMu   sync.RWMutex
)

// InitializeConnectionManager initializes the singleton with configuration.
// When the namespace administration API is configured, tenant DSNs are
// derived by templating the workplace ID into {workplaceID}.{baseHost};
// otherwise tenants live on the same cluster as the system database.
func InitializeConnectionManager(cfg *config.Config, systemDB *sql.DB) error {
	var initErr error
	instanceOnce.Do(func() {
		instanceMu.Lock()
		defer instanceMu.Unlock()

		resolveDSN := func(workplaceID string) string {
			return database.GetWorkplaceDSN(&cfg.Database, workplaceID)
		}
		if cfg.NamespaceAPI.Endpoint != "" {
			resolveDSN = func(workplaceID string) string {
				return fmt.Sprintf("postgres://%s:%s@%s.%s:%d/%s?sslmode=%s",
					cfg.Database.User,
					cfg.Database.Password,
					workplaceID,
					cfg.NamespaceAPI.BaseHost,
					cfg.Database.Port,
					cfg.Database.DBName,
					cfg.Database.SSLMode,
				)
			}
		}

		instance = &connectionManager{
			config:              cfg,
			systemDB:            systemDB,
			resolveDSN:          resolveDSN,
			workplacePools:      make(map[string]*sql.DB),
			poolAccessTimes:     make(map[string]time.Time),
			maxConnections:      cfg.Database.MaxConnections,
			maxConnectionsPerDB: cfg.Database.MaxConnectionsPerDB,
		}

		// Configure system database pool
		// System DB gets slightly more connections (10% of total, min 5, max 20)
		systemPoolSize := cfg.Database.MaxConnections / 10
		if systemPoolSize < 5 {
			systemPoolSize = 5
		}
		if systemPoolSize > 20 {
			systemPoolSize = 20
		}

		systemDB.SetMaxOpenConns(systemPoolSize)
		systemDB.SetMaxIdleConns(systemPoolSize / 2)
		systemDB.SetConnMaxLifetime(cfg.Database.ConnectionMaxLifetime)
		systemDB.SetConnMaxIdleTime(cfg.Database.ConnectionMaxIdleTime)
	})

	return initErr
}

// GetConnectionManager returns the singleton instance
func GetConnectionManager() (ConnectionManager, error) {
	instanceMu.RLock()
	defer instanceMu.RUnlock()

	if instance == nil {
		return nil, fmt.Errorf("connection manager not initialized")
	}

	return instance, nil
}

// ResetConnectionManager resets the singleton (for testing only)
func ResetConnectionManager() {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	if instance != nil {
		_ = instance.Close()
		instance = nil
	}
	instanceOnce = sync.Once{}
}

// GetSystemConnection returns the system database connection
func (cm *connectionManager) GetSystemConnection() *sql.DB {
	return cm.systemDB
}

// GetWorkplaceConnection returns a connection pool for a workplace database
func (cm *connectionManager) GetWorkplaceConnection(ctx context.Context, workplaceID string) (*sql.DB, error) {
	// Check if context is already cancelled before doing any work
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	// Check if we already have a connection pool for this workplace
	cm.mu.RLock()
	pool, ok := cm.workplacePools[workplaceID]
	cm.mu.RUnlock()

	if ok {
		// Test the connection pool is still valid
		if err := pool.PingContext(ctx); err == nil {
			// Double-check it's still in the map (not closed by another goroutine)
			cm.mu.RLock()
			stillExists := cm.workplacePools[workplaceID] == pool
			cm.mu.RUnlock()

			if stillExists {
				// Update access time for LRU tracking
				cm.mu.Lock()
				cm.poolAccessTimes[workplaceID] = time.Now()
				cm.mu.Unlock()
				return pool, nil
			}
		}

		// Pool is stale or was closed, try to clean it up safely
		cm.mu.Lock()
		// Only delete if it's still the same pool instance
		if cm.workplacePools[workplaceID] == pool {
			delete(cm.workplacePools, workplaceID)
			delete(cm.poolAccessTimes, workplaceID)
			_ = pool.Close()
		}
		cm.mu.Unlock()
	}

	// Check context again before expensive pool creation
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Need to create a new pool
	cm.mu.Lock()

	// Double-check after acquiring write lock (another goroutine may have created it)
	if pool, ok := cm.workplacePools[workplaceID]; ok {
		cm.poolAccessTimes[workplaceID] = time.Now()
		cm.mu.Unlock()
		return pool, nil
	}

	// Check if we have capacity for a new database connection pool
	if !cm.hasCapacityForNewPool() {
		// Release lock before calling closeLRUIdlePools (it acquires its own locks)
		cm.mu.Unlock()

		// Try to close least recently used idle pools
		if cm.closeLRUIdlePools(1) > 0 {
			// Successfully closed a pool, re-acquire lock and retry
			cm.mu.Lock()
			if !cm.hasCapacityForNewPool() {
				cm.mu.Unlock()
				return nil, &ConnectionLimitError{
					MaxConnections:     cm.maxConnections,
					CurrentConnections: cm.getTotalConnectionCount(),
					WorkplaceID:        workplaceID,
				}
			}
			// Lock still held, continue to pool creation
		} else {
			// Cannot close any pools - all are in use
			return nil, &ConnectionLimitError{
				MaxConnections:     cm.maxConnections,
				CurrentConnections: cm.getTotalConnectionCount(),
				WorkplaceID:        workplaceID,
			}
		}
	}
	// Lock still held at this point

	// Create new workplace connection pool
	pool, err := cm.createWorkplacePool(ctx, workplaceID)
	if err != nil {
		cm.mu.Unlock()
		return nil, fmt.Errorf("failed to create workplace pool: %w", err)
	}

	// Store in map with current access time
	cm.workplacePools[workplaceID] = pool
	cm.poolAccessTimes[workplaceID] = time.Now()
	cm.mu.Unlock()

	return pool, nil
}

// createWorkplacePool creates a new connection pool for a workplace database
func (cm *connectionManager) createWorkplacePool(ctx context.Context, workplaceID string) (*sql.DB, error) {
	dsn := cm.resolveDSN(workplaceID)

	// Open connection pool
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		// Don't include dsn in error (contains password)
		return nil, fmt.Errorf("failed to open connection to workplace %s: %w", workplaceID, err)
	}

	// Test connection with context
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		// Don't include dsn in error (contains password)
		return nil, fmt.Errorf("failed to connect to workplace %s database: %w", workplaceID, err)
	}

	// Verify pool actually works with a test query
	var result int
	if err := db.QueryRowContext(ctx, "SELECT 1").Scan(&result); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to verify database access for workplace %s: %w", workplaceID, err)
	}

	// Configure small pool for this workplace database
	// Each workplace DB gets only a few connections since queries are short-lived
	db.SetMaxOpenConns(cm.maxConnectionsPerDB)
	db.SetMaxIdleConns(1) // Keep 1 idle connection warm
	db.SetConnMaxLifetime(cm.config.Database.ConnectionMaxLifetime)
	db.SetConnMaxIdleTime(cm.config.Database.ConnectionMaxIdleTime)

	return db, nil
}

// hasCapacityForNewPool checks if we have capacity for a new connection pool
// Must be called with write lock held
func (cm *connectionManager) hasCapacityForNewPool() bool {
	currentTotal := cm.getTotalConnectionCount()

	// Calculate projected total if we add a new pool
	projectedTotal := currentTotal + cm.maxConnectionsPerDB

	return projectedTotal <= cm.maxConnections
}

// getTotalConnectionCount returns the current total open connections
// Must be called with lock held
func (cm *connectionManager) getTotalConnectionCount() int {
	total := 0

	// Count system connections
	if cm.systemDB != nil {
		stats := cm.systemDB.Stats()
		total += stats.OpenConnections
	}

	// Count workplace pool connections
	for _, pool := range cm.workplacePools {
		stats := pool.Stats()
		total += stats.OpenConnections
	}

	return total
}

// identifyLRUCandidates identifies idle workplace pools for eviction using LRU policy
// Returns workplace IDs sorted by least recently used (oldest first)
// This method acquires a read lock internally
func (cm *connectionManager) identifyLRUCandidates(count int) []string {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	type candidate struct {
		workplaceID string
		lastAccess  time.Time
	}

	var candidates []candidate

	// Find all idle pools with their access times
	for workplaceID, pool := range cm.workplacePools {
		stats := pool.Stats()

		// If no connections are in use, this pool can be closed
		if stats.InUse == 0 && stats.OpenConnections > 0 {
			accessTime := cm.poolAccessTimes[workplaceID]
			candidates = append(candidates, candidate{
				workplaceID: workplaceID,
				lastAccess:  accessTime,
			})
		}
	}

	// If no candidates, return empty slice
	if len(candidates) == 0 {
		return nil
	}

	// Sort by access time (oldest first) - this is true LRU
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].lastAccess.Before(candidates[j].lastAccess)
	})

	// Return up to 'count' workplace IDs
	result := make([]string, 0, count)
	for i := 0; i < len(candidates) && i < count; i++ {
		result = append(result, candidates[i].workplaceID)
	}

	return result
}

// closeLRUIdlePools closes up to 'count' least recently used idle pools
// Returns the number of pools actually closed
// This method uses two-phase eviction: identify candidates with read lock,
// then close with write lock. Must be called WITHOUT lock held.
func (cm *connectionManager) closeLRUIdlePools(count int) int {
	// Phase 1: Identify candidates (with read lock inside identifyLRUCandidates)
	candidates := cm.identifyLRUCandidates(count)

	// If no candidates, return early
	if len(candidates) == 0 {
		return 0
	}

	// Phase 2: Close pools (acquire write lock only for closing)
	cm.mu.Lock()
	defer cm.mu.Unlock()

	closed := 0
	for _, workplaceID := range candidates {
		if pool, ok := cm.workplacePools[workplaceID]; ok {
			// Re-check pool is still idle (state may have changed between phases)
			stats := pool.Stats()
			if stats.InUse == 0 {
				_ = pool.Close()
				delete(cm.workplacePools, workplaceID)
				delete(cm.poolAccessTimes, workplaceID)
				closed++
			}
		}
	}

	return closed
}

// CloseWorkplaceConnection closes a specific workplace connection pool
func (cm *connectionManager) CloseWorkplaceConnection(workplaceID string) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if pool, ok := cm.workplacePools[workplaceID]; ok {
		delete(cm.workplacePools, workplaceID)
		delete(cm.poolAccessTimes, workplaceID)
		return pool.Close()
	}

	return nil
}

// GetStats returns connection statistics
func (cm *connectionManager) GetStats() ConnectionStats {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	stats := ConnectionStats{
		MaxConnections:      cm.maxConnections,
		MaxConnectionsPerDB: cm.maxConnectionsPerDB,
		WorkplacePools:      make(map[string]ConnectionPoolStats),
	}

	// System connection stats
	if cm.systemDB != nil {
		systemStats := cm.systemDB.Stats()
		stats.SystemConnections = ConnectionPoolStats{
			OpenConnections: systemStats.OpenConnections,
			InUse:           systemStats.InUse,
			Idle:            systemStats.Idle,
			MaxOpen:         systemStats.MaxOpenConnections,
			WaitCount:       systemStats.WaitCount,
			WaitDuration:    systemStats.WaitDuration,
		}
		stats.TotalOpenConnections += systemStats.OpenConnections
		stats.TotalInUseConnections += systemStats.InUse
		stats.TotalIdleConnections += systemStats.Idle
	}

	// Workplace pool stats
	for workplaceID, pool := range cm.workplacePools {
		poolStats := pool.Stats()
		stats.WorkplacePools[workplaceID] = ConnectionPoolStats{
			OpenConnections: poolStats.OpenConnections,
			InUse:           poolStats.InUse,
			Idle:            poolStats.Idle,
			MaxOpen:         poolStats.MaxOpenConnections,
			WaitCount:       poolStats.WaitCount,
			WaitDuration:    poolStats.WaitDuration,
		}
		stats.TotalOpenConnections += poolStats.OpenConnections
		stats.TotalInUseConnections += poolStats.InUse
		stats.TotalIdleConnections += poolStats.Idle
	}

	stats.ActiveWorkplaceDatabases = len(cm.workplacePools)

	return stats
}

// Close closes all connections
func (cm *connectionManager) Close() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	var errors []error

	// Close all workplace pools
	for workplaceID, pool := range cm.workplacePools {
		if err := pool.Close(); err != nil {
			errors = append(errors, fmt.Errorf("failed to close workplace %s: %w", workplaceID, err))
		}
		delete(cm.workplacePools, workplaceID)
		delete(cm.poolAccessTimes, workplaceID)
	}

	// Note: systemDB is closed by the application

	if len(errors) > 0 {
		return fmt.Errorf("errors closing connections: %v", errors)
	}

	return nil
}

// ConnectionLimitError is returned when connection limit is reached
type ConnectionLimitError struct {
	MaxConnections     int
	CurrentConnections int
	WorkplaceID        string
}

func (e *ConnectionLimitError) Error() string {
	return fmt.Sprintf(
		"connection limit reached: %d/%d connections in use, cannot create pool for workplace %s",
		e.CurrentConnections,
		e.MaxConnections,
		e.WorkplaceID,
	)
}

// IsConnectionLimitError checks if an error is a connection limit error
func IsConnectionLimitError(err error) bool {
	_, ok := err.(*ConnectionLimitError)
	return ok
}
