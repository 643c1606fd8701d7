package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDevelopment(t *testing.T) {
	// Test development environment
	cfg := &Config{
		Environment: "development",
	}
	assert.True(t, cfg.IsDevelopment())

	// Test production environment
	cfg = &Config{
		Environment: "production",
	}
	assert.False(t, cfg.IsDevelopment())

	// Test staging environment
	cfg = &Config{
		Environment: "staging",
	}
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadWithOptions(t *testing.T) {
	// Set environment variables for the test
	os.Setenv("SECRET_KEY", "test-key")
	os.Setenv("SERVER_PORT", "9000")
	os.Setenv("SERVER_HOST", "127.0.0.1")
	os.Setenv("DB_HOST", "testhost")
	os.Setenv("DB_PORT", "5432")
	os.Setenv("DB_USER", "testuser")
	os.Setenv("DB_PASSWORD", "testpass")
	os.Setenv("DB_PREFIX", "test")
	os.Setenv("DB_NAME", "test_system")
	os.Setenv("ENVIRONMENT", "development")
	os.Setenv("NAMESPACE_API_ENDPOINT", "http://dbadmin.internal:9090")
	os.Setenv("NAMESPACE_API_AUTH_TOKEN", "admin-token")
	os.Setenv("NAMESPACE_API_BASE_HOST", "db.example.com")

	// Clean up after the test
	defer func() {
		os.Unsetenv("SECRET_KEY")
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("SERVER_HOST")
		os.Unsetenv("DB_HOST")
		os.Unsetenv("DB_PORT")
		os.Unsetenv("DB_USER")
		os.Unsetenv("DB_PASSWORD")
		os.Unsetenv("DB_PREFIX")
		os.Unsetenv("DB_NAME")
		os.Unsetenv("ENVIRONMENT")
		os.Unsetenv("NAMESPACE_API_ENDPOINT")
		os.Unsetenv("NAMESPACE_API_AUTH_TOKEN")
		os.Unsetenv("NAMESPACE_API_BASE_HOST")
	}()

	// Load config with env vars
	cfg, err := LoadWithOptions(LoadOptions{
		// Don't specify EnvFile to force it to use environment variables
	})
	require.NoError(t, err)

	// Verify loaded config values
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "testhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "testuser", cfg.Database.User)
	assert.Equal(t, "testpass", cfg.Database.Password)
	assert.Equal(t, "test", cfg.Database.Prefix)
	assert.Equal(t, "test_system", cfg.Database.DBName)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "test-key", cfg.Security.SecretKey)
	assert.Equal(t, "http://dbadmin.internal:9090", cfg.NamespaceAPI.Endpoint)
	assert.Equal(t, "admin-token", cfg.NamespaceAPI.AuthToken)
	assert.Equal(t, "db.example.com", cfg.NamespaceAPI.BaseHost)

	// Test development environment flag
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadMissingSecretKey(t *testing.T) {
	os.Unsetenv("SECRET_KEY")

	_, err := LoadWithOptions(LoadOptions{})
	require.Error(t, err)
	assert.Equal(t, "SECRET_KEY is required", err.Error())
}

func TestLoadDefaults(t *testing.T) {
	os.Setenv("SECRET_KEY", "test-key")
	defer os.Unsetenv("SECRET_KEY")

	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "workplace", cfg.Database.Prefix)
	assert.Equal(t, "workplace_system", cfg.Database.DBName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, "workplace-api", cfg.Tracing.ServiceName)
	assert.Empty(t, cfg.NamespaceAPI.Endpoint)
}

func TestLoad(t *testing.T) {
	// Test the Load function by temporarily setting the required environment variables
	os.Setenv("SECRET_KEY", "test-key")
	defer os.Unsetenv("SECRET_KEY")

	cfg, err := Load()
	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "test-key", cfg.Security.SecretKey)
}
