package schema

// TableDefinitions contains all the SQL statements to create the system database tables
// Don't put REFERENCES and don't put CHECK constraints in the CREATE TABLE statements
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(255),
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS user_sessions (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		expires_at TIMESTAMP NOT NULL,
		created_at TIMESTAMP NOT NULL,
		magic_code VARCHAR(255),  -- HMAC-SHA256 hash of authentication code (not plain text)
		magic_code_expires_at TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS workplaces (
		id VARCHAR(32) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		owner_id UUID NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS workplace_members (
		user_id UUID NOT NULL,
		workplace_id VARCHAR(32) NOT NULL,
		role VARCHAR(20) NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		PRIMARY KEY (user_id, workplace_id)
	)`,
	`CREATE TABLE IF NOT EXISTS workplace_invitations (
		id UUID PRIMARY KEY,
		workplace_id VARCHAR(32) NOT NULL,
		inviter_id UUID NOT NULL,
		email VARCHAR(255) NOT NULL,
		expires_at TIMESTAMP NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		UNIQUE (workplace_id, email)
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		key VARCHAR(255) PRIMARY KEY,
		value TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (key)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_workplace_members_workplace_id ON workplace_members (workplace_id)`,
	`CREATE INDEX IF NOT EXISTS idx_workplace_invitations_workplace_id ON workplace_invitations (workplace_id)`,
	`CREATE INDEX IF NOT EXISTS idx_user_sessions_user_id ON user_sessions (user_id)`,
}

// TableNames lists the system tables in creation order; drop in reverse
var TableNames = []string{
	"users",
	"user_sessions",
	"workplaces",
	"workplace_members",
	"workplace_invitations",
	"settings",
}
