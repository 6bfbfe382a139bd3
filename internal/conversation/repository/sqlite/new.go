package sqlite

import (
	"database/sql"
	"fmt"

	"todochat/internal/conversation"
	pkgLog "todochat/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS conversations (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_conversations_user ON conversations (user_id, created_at DESC);

CREATE TABLE IF NOT EXISTS turns (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	conversation_id TEXT NOT NULL REFERENCES conversations(id) ON DELETE CASCADE,
	role            TEXT NOT NULL,
	content         TEXT NOT NULL,
	created_at      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_turns_conversation ON turns (conversation_id, id);
`

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

// New creates a SQLite-backed conversation repository and ensures its schema.
func New(db *sql.DB, l pkgLog.Logger) (conversation.Repository, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("ensure conversations schema: %w", err)
	}
	return &implRepository{db: db, l: l}, nil
}
