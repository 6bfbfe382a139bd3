package sqlite

import (
	"database/sql"
	"fmt"

	"todochat/internal/task/repository"
	pkgLog "todochat/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id                  TEXT PRIMARY KEY,
	user_id             TEXT NOT NULL,
	title               TEXT NOT NULL,
	description         TEXT NOT NULL DEFAULT '',
	completed           INTEGER NOT NULL DEFAULT 0,
	priority            TEXT NOT NULL DEFAULT 'medium',
	tags                TEXT NOT NULL DEFAULT '[]',
	due_date            TEXT,
	recurrence_pattern  TEXT NOT NULL DEFAULT '',
	recurrence_interval INTEGER NOT NULL DEFAULT 0,
	reminder_offset     TEXT NOT NULL DEFAULT '',
	created_at          TEXT NOT NULL,
	updated_at          TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tasks_user_created ON tasks (user_id, created_at DESC);
`

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

// New creates a SQLite-backed task repository and ensures its schema.
func New(db *sql.DB, l pkgLog.Logger) (repository.Repository, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("ensure tasks schema: %w", err)
	}
	return &implRepository{db: db, l: l}, nil
}
