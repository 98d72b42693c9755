// Package database manages PostgreSQL connections and provides the data access layer.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps the PostgreSQL connection pool and provides query methods.
type DB struct {
	Pool *pgxpool.Pool
}

// New creates a new database connection pool.
func New(dsn string) (*DB, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}

	config.MaxConns = 20
	config.MinConns = 2
	config.MaxConnLifetime = 30 * time.Minute
	config.MaxConnIdleTime = 5 * time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// Close shuts down the connection pool.
func (db *DB) Close() {
	db.Pool.Close()
}

// Migrate runs database schema migrations.
// An advisory lock prevents concurrent replicas from racing on DDL statements.
func (db *DB) Migrate(ctx context.Context) error {
	conn, err := db.Pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquiring connection for migration: %w", err)
	}
	defer conn.Release()

	// Application-specific lock ID to avoid collisions with other apps on
	// the same PostgreSQL instance.
	const migrationLockID int64 = 0x4A41_4D53 // "JAMS"
	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", migrationLockID); err != nil {
		return fmt.Errorf("acquiring migration lock: %w", err)
	}
	defer conn.Exec(ctx, "SELECT pg_advisory_unlock($1)", migrationLockID)

	schema := `
	CREATE TABLE IF NOT EXISTS projects (
		id          TEXT PRIMARY KEY,
		owner_id    TEXT NOT NULL DEFAULT 'user-default',
		name        TEXT NOT NULL,
		description TEXT,
		status      TEXT NOT NULL DEFAULT 'active',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS workflows (
		id          TEXT PRIMARY KEY,
		project_id  TEXT,
		name        TEXT NOT NULL,
		description TEXT,
		graph_json  JSONB NOT NULL DEFAULT '{}'::jsonb,
		status      TEXT NOT NULL DEFAULT 'draft',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS executions (
		id          TEXT PRIMARY KEY,
		workflow_id TEXT,
		project_id  TEXT,
		agent_name  TEXT NOT NULL,
		model_id    TEXT NOT NULL,
		task        TEXT NOT NULL,
		status      TEXT NOT NULL DEFAULT 'running',
		result      JSONB,
		started_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		finished_at TIMESTAMPTZ,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS execution_logs (
		id           TEXT PRIMARY KEY,
		execution_id TEXT NOT NULL,
		level        TEXT NOT NULL DEFAULT 'info',
		message      TEXT NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS audio_files (
		id          TEXT PRIMARY KEY,
		project_id  TEXT,
		storage_key TEXT NOT NULL,
		filename    TEXT NOT NULL,
		file_type   TEXT NOT NULL DEFAULT 'mp3',
		size_bytes  BIGINT NOT NULL DEFAULT 0,
		status      TEXT NOT NULL DEFAULT 'active',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS notifications (
		id         TEXT PRIMARY KEY,
		kind       TEXT NOT NULL DEFAULT 'info',
		title      TEXT NOT NULL,
		body       TEXT,
		read       BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS settings (
		id         TEXT PRIMARY KEY,
		key        TEXT NOT NULL UNIQUE,
		value_json JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_workflows_project_id ON workflows(project_id);
	CREATE INDEX IF NOT EXISTS idx_executions_workflow_id ON executions(workflow_id);
	CREATE INDEX IF NOT EXISTS idx_executions_created_at ON executions(created_at);
	CREATE INDEX IF NOT EXISTS idx_execution_logs_execution_id ON execution_logs(execution_id);
	CREATE INDEX IF NOT EXISTS idx_audio_files_project_id ON audio_files(project_id);
	CREATE INDEX IF NOT EXISTS idx_notifications_created_at ON notifications(created_at);
	`

	_, err = conn.Exec(ctx, schema)
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	return nil
}
