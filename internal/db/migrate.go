package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'user'
		              CHECK(role IN ('user','admin')),
		organization  TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tokens (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id    INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		token      TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id                 INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id            INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name               TEXT NOT NULL,
		goal               TEXT NOT NULL DEFAULT '',
		status             TEXT NOT NULL DEFAULT 'active'
		                   CHECK(status IN ('active','done')),
		aggregated_summary TEXT NOT NULL DEFAULT '',
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id     INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		session_number INTEGER NOT NULL,
		session_name   TEXT NOT NULL DEFAULT '',
		status         TEXT NOT NULL DEFAULT 'Not Started',
		summary        TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL,
		UNIQUE(project_id, session_number)
	)`,

	`CREATE TABLE IF NOT EXISTS messages (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id INTEGER NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
		sender     TEXT NOT NULL CHECK(sender IN ('user','assistant')),
		content    TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	// session_id/project_id of 0 means "not owned by a session/project";
	// files with both zero form the admin-managed global pool.
	`CREATE TABLE IF NOT EXISTS files (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id   INTEGER NOT NULL DEFAULT 0,
		project_id   INTEGER NOT NULL DEFAULT 0,
		storage_path TEXT NOT NULL,
		display_name TEXT NOT NULL,
		created_at   TEXT NOT NULL
	)`,

	// Singleton row keyed by id = 1, created empty on first read.
	`CREATE TABLE IF NOT EXISTS prompt_config (
		id                           INTEGER PRIMARY KEY CHECK(id = 1),
		assistant_prompt             TEXT NOT NULL DEFAULT '',
		file_upload_prompt           TEXT NOT NULL DEFAULT '',
		project_summarization_prompt TEXT NOT NULL DEFAULT '',
		goals_prompt                 TEXT NOT NULL DEFAULT '',
		session_summarization_prompt TEXT NOT NULL DEFAULT '',
		updated_at                   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_projects_user ON projects(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_project ON sessions(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_session ON messages(session_id)`,
	`CREATE INDEX IF NOT EXISTS idx_files_session ON files(session_id)`,
	`CREATE INDEX IF NOT EXISTS idx_files_project ON files(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tokens_token ON tokens(token)`,
}
