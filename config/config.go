package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const VERSION = "2.0"

type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Security     SecurityConfig
	Tracing      TracingConfig
	SMTP         SMTPConfig
	NamespaceAPI NamespaceAPIConfig
	Environment  string
	APIEndpoint  string
	WebEndpoint  string
	LogLevel     string
	Version      string
}

type ServerConfig struct {
	Port int
	Host string
	SSL  SSLConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	Prefix   string
	SSLMode  string

	// Connection pool limits shared across the system database and all
	// tenant pools
	MaxConnections        int
	MaxConnectionsPerDB   int
	ConnectionMaxLifetime time.Duration
	ConnectionMaxIdleTime time.Duration
}

type SecurityConfig struct {
	// HMAC secret used to sign session tokens and email magic codes
	SecretKey string
}

type SSLConfig struct {
	Enabled  bool
	CertFile string
	KeyFile  string
}

type TracingConfig struct {
	Enabled             bool
	ServiceName         string
	SamplingProbability float64
}

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// NamespaceAPIConfig configures the external database-administration API
// used to provision tenant databases. When Endpoint is empty the service
// provisions tenant databases directly on the Postgres cluster instead.
type NamespaceAPIConfig struct {
	Endpoint  string
	AuthToken string
	BaseHost  string
}

// LoadOptions contains options for loading configuration
type LoadOptions struct {
	EnvFile string // Optional environment file to load (e.g., ".env", ".env.test")
}

// Load loads the configuration with default options
func Load() (*Config, error) {
	// Try to load .env file but don't require it
	return LoadWithOptions(LoadOptions{EnvFile: ".env"})
}

// LoadWithOptions loads the configuration with the specified options
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_PREFIX", "workplace")
	v.SetDefault("DB_NAME", "workplace_system")
	v.SetDefault("DB_SSLMODE", "require")
	v.SetDefault("DB_MAX_CONNECTIONS", 50)
	v.SetDefault("DB_MAX_CONNECTIONS_PER_DB", 3)
	v.SetDefault("DB_CONNECTION_MAX_LIFETIME", "20m")
	v.SetDefault("DB_CONNECTION_MAX_IDLE_TIME", "10m")
	v.SetDefault("ENVIRONMENT", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("VERSION", VERSION)

	// SMTP defaults
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_FROM_NAME", "Workplace")

	// Default tracing config
	v.SetDefault("TRACING_ENABLED", false)
	v.SetDefault("TRACING_SERVICE_NAME", "workplace-api")
	v.SetDefault("TRACING_SAMPLING_PROBABILITY", 0.1)

	// Namespace administration API defaults (disabled unless an endpoint is set)
	v.SetDefault("NAMESPACE_API_ENDPOINT", "")
	v.SetDefault("NAMESPACE_API_AUTH_TOKEN", "")
	v.SetDefault("NAMESPACE_API_BASE_HOST", "")

	// Load environment file if specified
	if opts.EnvFile != "" {
		v.SetConfigName(opts.EnvFile)
		v.SetConfigType("env")

		currentPath, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("error getting current directory: %w", err)
		}

		v.AddConfigPath(currentPath)

		if err := v.ReadInConfig(); err != nil {
			// It's okay if config file doesn't exist
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	// Read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	secretKey := v.GetString("SECRET_KEY")
	if secretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY is required")
	}

	config := &Config{
		Server: ServerConfig{
			Port: v.GetInt("SERVER_PORT"),
			Host: v.GetString("SERVER_HOST"),
			SSL: SSLConfig{
				Enabled:  v.GetBool("SSL_ENABLED"),
				CertFile: v.GetString("SSL_CERT_FILE"),
				KeyFile:  v.GetString("SSL_KEY_FILE"),
			},
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			Prefix:   v.GetString("DB_PREFIX"),
			SSLMode:  v.GetString("DB_SSLMODE"),

			MaxConnections:        v.GetInt("DB_MAX_CONNECTIONS"),
			MaxConnectionsPerDB:   v.GetInt("DB_MAX_CONNECTIONS_PER_DB"),
			ConnectionMaxLifetime: v.GetDuration("DB_CONNECTION_MAX_LIFETIME"),
			ConnectionMaxIdleTime: v.GetDuration("DB_CONNECTION_MAX_IDLE_TIME"),
		},
		SMTP: SMTPConfig{
			Host:      v.GetString("SMTP_HOST"),
			Port:      v.GetInt("SMTP_PORT"),
			Username:  v.GetString("SMTP_USERNAME"),
			Password:  v.GetString("SMTP_PASSWORD"),
			FromEmail: v.GetString("SMTP_FROM_EMAIL"),
			FromName:  v.GetString("SMTP_FROM_NAME"),
		},
		Security: SecurityConfig{
			SecretKey: secretKey,
		},
		Tracing: TracingConfig{
			Enabled:             v.GetBool("TRACING_ENABLED"),
			ServiceName:         v.GetString("TRACING_SERVICE_NAME"),
			SamplingProbability: v.GetFloat64("TRACING_SAMPLING_PROBABILITY"),
		},
		NamespaceAPI: NamespaceAPIConfig{
			Endpoint:  v.GetString("NAMESPACE_API_ENDPOINT"),
			AuthToken: v.GetString("NAMESPACE_API_AUTH_TOKEN"),
			BaseHost:  v.GetString("NAMESPACE_API_BASE_HOST"),
		},

		Environment: v.GetString("ENVIRONMENT"),
		APIEndpoint: v.GetString("API_ENDPOINT"),
		WebEndpoint: v.GetString("WEB_ENDPOINT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		Version:     v.GetString("VERSION"),
	}

	if config.WebEndpoint == "" {
		config.WebEndpoint = config.APIEndpoint
	}

	return config, nil
}

// IsDevelopment returns true if the environment is set to development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
