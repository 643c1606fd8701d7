package schema

// WorkplaceTableDefinitions contains the SQL statements to create the tables
// of one workplace (tenant) database. The "order" columns are DOUBLE
// PRECISION: fractional keys, never required to be integers.
// Don't put REFERENCES and don't put CHECK constraints in the CREATE TABLE statements
var WorkplaceTableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(255),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		owner_id UUID NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS project_columns (
		id UUID PRIMARY KEY,
		project_id UUID NOT NULL,
		name VARCHAR(255) NOT NULL,
		"order" DOUBLE PRECISION NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS project_tasks (
		id UUID PRIMARY KEY,
		project_id UUID NOT NULL,
		column_id UUID NOT NULL,
		name VARCHAR(255) NOT NULL,
		content TEXT NOT NULL DEFAULT '',
		"order" DOUBLE PRECISION NOT NULL,
		owner_id UUID NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS task_assignees (
		user_id UUID NOT NULL,
		task_id UUID NOT NULL,
		PRIMARY KEY (user_id, task_id)
	)`,
	`CREATE TABLE IF NOT EXISTS task_comments (
		id UUID PRIMARY KEY,
		task_id UUID NOT NULL,
		user_id UUID NOT NULL,
		description TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS task_timesheets (
		id UUID PRIMARY KEY,
		task_id UUID NOT NULL,
		user_id UUID NOT NULL,
		start_time TIMESTAMP NOT NULL,
		stop_time TIMESTAMP,
		description TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_project_columns_project_id ON project_columns (project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_project_tasks_project_id ON project_tasks (project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_project_tasks_column_id ON project_tasks (column_id)`,
	`CREATE INDEX IF NOT EXISTS idx_task_comments_task_id ON task_comments (task_id)`,
	`CREATE INDEX IF NOT EXISTS idx_task_timesheets_user_id ON task_timesheets (user_id)`,
}
