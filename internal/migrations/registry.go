package migrations

import (
	"sort"
	"sync"
)

// DefaultRegistry holds the migrations compiled into this binary. Each
// versioned migration registers itself from an init function, so
// importing the package is enough to make its migrations runnable.
var DefaultRegistry = NewRegistry()

// Registry is a thread-safe MigrationRegistry backed by a version map
type Registry struct {
	mu         sync.RWMutex
	migrations map[float64]MajorMigrationInterface
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		migrations: make(map[float64]MajorMigrationInterface),
	}
}

// Register adds a migration, replacing any earlier one for the same version
func (r *Registry) Register(migration MajorMigrationInterface) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.migrations[migration.GetMajorVersion()] = migration
}

// GetMigrations returns every registered migration in ascending version order
func (r *Registry) GetMigrations() []MajorMigrationInterface {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]MajorMigrationInterface, 0, len(r.migrations))
	for _, migration := range r.migrations {
		out = append(out, migration)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].GetMajorVersion() < out[j].GetMajorVersion()
	})
	return out
}

// GetMigration looks up the migration for a single version
func (r *Registry) GetMigration(version float64) (MajorMigrationInterface, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	migration, exists := r.migrations[version]
	return migration, exists
}

// Register adds a migration to the default registry
func Register(migration MajorMigrationInterface) {
	DefaultRegistry.Register(migration)
}

// GetRegisteredMigrations lists the default registry in version order
func GetRegisteredMigrations() []MajorMigrationInterface {
	return DefaultRegistry.GetMigrations()
}

// GetRegisteredMigration looks up one version in the default registry
func GetRegisteredMigration(version float64) (MajorMigrationInterface, bool) {
	return DefaultRegistry.GetMigration(version)
}
