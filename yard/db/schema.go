package db

import (
	"database/sql"
	"fmt"
)

// schemaStatements is executed in order at startup. Every statement is
// idempotent so a restart against an initialised database is a no-op.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id serial PRIMARY KEY,
		name text NOT NULL UNIQUE,
		clone_url text NOT NULL,
		default_branch text NOT NULL DEFAULT 'main',
		branch_filter text NOT NULL DEFAULT '',
		build_pull_requests boolean NOT NULL DEFAULT true,
		max_duration_secs integer NOT NULL DEFAULT 0,
		image text NOT NULL DEFAULT '',
		profile text NOT NULL DEFAULT '',
		phases jsonb NOT NULL DEFAULT '[]',
		required_secrets jsonb NOT NULL DEFAULT '[]',
		allow_docker boolean NOT NULL DEFAULT false,
		notify_on_failure boolean NOT NULL DEFAULT false,
		owner text NOT NULL DEFAULT '',
		created_at timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS secrets (
		project_id integer NOT NULL REFERENCES projects (id) ON DELETE CASCADE,
		name text NOT NULL,
		ciphertext text NOT NULL,
		nonce text,
		created_at timestamptz NOT NULL DEFAULT now(),
		PRIMARY KEY (project_id, name)
	)`,

	`CREATE TABLE IF NOT EXISTS builds (
		id serial PRIMARY KEY,
		project_id integer NOT NULL REFERENCES projects (id) ON DELETE CASCADE,
		commit_sha text NOT NULL,
		branch text NOT NULL,
		message text NOT NULL DEFAULT '',
		author text NOT NULL DEFAULT '',
		pr_number integer,
		trigger_kind text NOT NULL,
		status text NOT NULL DEFAULT 'queued',
		parent_id integer REFERENCES builds (id),
		error_kind text NOT NULL DEFAULT '',
		error_message text NOT NULL DEFAULT '',
		queued_at timestamptz NOT NULL DEFAULT now(),
		started_at timestamptz,
		finished_at timestamptz,
		duration_ms bigint NOT NULL DEFAULT 0,
		steps_total integer NOT NULL DEFAULT 0,
		steps_completed integer NOT NULL DEFAULT 0,
		steps_failed integer NOT NULL DEFAULT 0,
		last_log_seq integer NOT NULL DEFAULT 0,
		cancel_requested boolean NOT NULL DEFAULT false,
		dispatch_token uuid,
		dispatch_expires_at timestamptz,
		dispatched_to text NOT NULL DEFAULT '',
		dispatch_count integer NOT NULL DEFAULT 0,
		queue_not_before timestamptz,
		abandon_retry boolean NOT NULL DEFAULT false,
		infra_retry boolean NOT NULL DEFAULT false,
		infra_retried boolean NOT NULL DEFAULT false,
		syslog_drained boolean NOT NULL DEFAULT false
	)`,

	`CREATE INDEX IF NOT EXISTS builds_queued_idx
		ON builds (id) WHERE status = 'queued'`,

	`CREATE INDEX IF NOT EXISTS builds_undrained_idx
		ON builds (id)
		WHERE syslog_drained = false
		AND status IN ('success', 'failed', 'cancelled', 'timed_out')`,

	`CREATE INDEX IF NOT EXISTS builds_dispatch_expiry_idx
		ON builds (dispatch_expires_at) WHERE status = 'running'`,

	`CREATE INDEX IF NOT EXISTS builds_project_idx
		ON builds (project_id)`,

	`CREATE TABLE IF NOT EXISTS log_entries (
		build_id integer NOT NULL REFERENCES builds (id) ON DELETE CASCADE,
		seq integer NOT NULL,
		kind text NOT NULL,
		step_name text NOT NULL DEFAULT '',
		channel text NOT NULL DEFAULT '',
		message text NOT NULL,
		at timestamptz NOT NULL DEFAULT now(),
		PRIMARY KEY (build_id, seq)
	)`,

	`CREATE TABLE IF NOT EXISTS artifacts (
		id serial PRIMARY KEY,
		build_id integer NOT NULL REFERENCES builds (id) ON DELETE CASCADE,
		name text NOT NULL,
		storage_path text NOT NULL,
		size_bytes bigint NOT NULL DEFAULT 0,
		created_at timestamptz NOT NULL DEFAULT now(),
		expires_at timestamptz NOT NULL,
		UNIQUE (build_id, name)
	)`,

	`CREATE INDEX IF NOT EXISTS artifacts_expiry_idx
		ON artifacts (expires_at)`,

	`CREATE TABLE IF NOT EXISTS notification_outbox (
		id serial PRIMARY KEY,
		build_id integer NOT NULL REFERENCES builds (id) ON DELETE CASCADE,
		recipient text NOT NULL,
		subject text NOT NULL,
		body text NOT NULL,
		created_at timestamptz NOT NULL DEFAULT now(),
		sent_at timestamptz
	)`,
}

func migrate(sqlDB *sql.DB) error {
	for _, statement := range schemaStatements {
		_, err := sqlDB.Exec(statement)
		if err != nil {
			return fmt.Errorf("apply schema statement: %w", err)
		}
	}

	return nil
}
