package database

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/workplacehq/workplace/config"
	"github.com/workplacehq/workplace/pkg/logger"
	"github.com/workplacehq/workplace/pkg/tracing"
)

//go:generate mockgen -destination=../domain/mocks/mock_provisioner.go -package=mocks github.com/workplacehq/workplace/internal/database Provisioner

// Provisioner creates and destroys tenant databases. Provision is
// idempotent-safe: a namespace that already exists is treated as already
// provisioned, not as an error.
type Provisioner interface {
	Provision(ctx context.Context, workplaceID string) error
	Deprovision(ctx context.Context, workplaceID string) error
}

// PostgresProvisioner provisions tenant databases directly on the same
// PostgreSQL cluster that hosts the system database.
type PostgresProvisioner struct {
	cfg    *config.DatabaseConfig
	logger logger.Logger
}

func NewPostgresProvisioner(cfg *config.DatabaseConfig, logger logger.Logger) *PostgresProvisioner {
	return &PostgresProvisioner{
		cfg:    cfg,
		logger: logger,
	}
}

func (p *PostgresProvisioner) Provision(ctx context.Context, workplaceID string) error {
	dbName := WorkplaceDatabaseName(p.cfg, workplaceID)

	// Connect to PostgreSQL server without specifying a database
	db, err := sql.Open("postgres", GetPostgresDSN(p.cfg))
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL server: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping PostgreSQL server: %w", err)
	}

	// Check if database exists
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)"
	if err := db.QueryRowContext(ctx, query, dbName).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		p.logger.WithField("workplace_id", workplaceID).Info("Workplace database already provisioned")
		return nil
	}

	createDBQuery := fmt.Sprintf("CREATE DATABASE %s", QuoteIdentifier(dbName))
	if _, err := db.ExecContext(ctx, createDBQuery); err != nil {
		return fmt.Errorf("failed to create workplace database: %w", err)
	}

	// Connect to the new database and apply the tenant schema
	wpDB, err := sql.Open("postgres", GetWorkplaceDSN(p.cfg, workplaceID))
	if err != nil {
		return fmt.Errorf("failed to connect to new workplace database: %w", err)
	}
	defer wpDB.Close()

	if err := wpDB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping new workplace database: %w", err)
	}

	if err := InitializeWorkplaceDatabase(wpDB); err != nil {
		return fmt.Errorf("failed to initialize workplace database schema: %w", err)
	}

	return nil
}

func (p *PostgresProvisioner) Deprovision(ctx context.Context, workplaceID string) error {
	dbName := WorkplaceDatabaseName(p.cfg, workplaceID)

	db, err := sql.Open("postgres", GetPostgresDSN(p.cfg))
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL server: %w", err)
	}
	defer db.Close()

	dropDBQuery := fmt.Sprintf("DROP DATABASE IF EXISTS %s", QuoteIdentifier(dbName))
	if _, err := db.ExecContext(ctx, dropDBQuery); err != nil {
		return fmt.Errorf("failed to drop workplace database: %w", err)
	}

	return nil
}

// NamespaceAPIProvisioner provisions tenant databases through an external
// database-administration API. The namespace is named after the workplace ID
// and the tenant database is reached at {workplaceID}.{baseHost}, so the
// workplace ID is the tenant discriminator at the network layer.
type NamespaceAPIProvisioner struct {
	endpoint  string
	authToken string
	baseHost  string
	dbCfg     *config.DatabaseConfig
	client    *http.Client
	logger    logger.Logger
}

func NewNamespaceAPIProvisioner(cfg *config.NamespaceAPIConfig, dbCfg *config.DatabaseConfig, logger logger.Logger) *NamespaceAPIProvisioner {
	return &NamespaceAPIProvisioner{
		endpoint:  strings.TrimRight(cfg.Endpoint, "/"),
		authToken: cfg.AuthToken,
		baseHost:  cfg.BaseHost,
		dbCfg:     dbCfg,
		client:    tracing.WrapHTTPClient(&http.Client{Timeout: 30 * time.Second}),
		logger:    logger,
	}
}

// TenantDSN templates the workplace ID into the tenant host
func (p *NamespaceAPIProvisioner) TenantDSN(workplaceID string) string {
	return fmt.Sprintf("postgres://%s:%s@%s.%s:%d/%s?sslmode=%s",
		p.dbCfg.User,
		p.dbCfg.Password,
		workplaceID,
		p.baseHost,
		p.dbCfg.Port,
		p.dbCfg.DBName,
		p.dbCfg.SSLMode,
	)
}

func (p *NamespaceAPIProvisioner) Provision(ctx context.Context, workplaceID string) error {
	createURL := fmt.Sprintf("%s/v1/namespaces/%s/create", p.endpoint, url.PathEscape(workplaceID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, createURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build namespace create request: %w", err)
	}
	if p.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+p.authToken)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call namespace administration API: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	// Only a 200 counts as created; anything else means the namespace was
	// not created, so the migration is skipped and there is no retry.
	if resp.StatusCode != http.StatusOK {
		p.logger.WithField("workplace_id", workplaceID).
			WithField("status", resp.StatusCode).
			Error("Namespace creation failed")
		return fmt.Errorf("namespace creation returned status %d", resp.StatusCode)
	}

	// Apply the tenant schema to the new namespace
	db, err := sql.Open("postgres", p.TenantDSN(workplaceID))
	if err != nil {
		return fmt.Errorf("failed to connect to new namespace: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping new namespace: %w", err)
	}

	if err := InitializeWorkplaceDatabase(db); err != nil {
		return fmt.Errorf("failed to initialize namespace schema: %w", err)
	}

	return nil
}

func (p *NamespaceAPIProvisioner) Deprovision(ctx context.Context, workplaceID string) error {
	deleteURL := fmt.Sprintf("%s/v1/namespaces/%s", p.endpoint, url.PathEscape(workplaceID))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, deleteURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build namespace delete request: %w", err)
	}
	if p.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+p.authToken)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call namespace administration API: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		p.logger.WithField("workplace_id", workplaceID).
			WithField("status", resp.StatusCode).
			Error("Namespace deletion failed")
		return fmt.Errorf("namespace deletion returned status %d", resp.StatusCode)
	}

	return nil
}
