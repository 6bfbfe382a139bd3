package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"todochat/internal/conversation"
)

// GetOrCreate returns the user's most recent conversation, creating one
// when the user has none.
func (r *implRepository) GetOrCreate(ctx context.Context, userID string) (conversation.Conversation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, created_at FROM conversations
		WHERE user_id = ? ORDER BY created_at DESC, id LIMIT 1`, userID,
	)

	var (
		c         conversation.Conversation
		createdAt string
	)
	err := row.Scan(&c.ID, &c.UserID, &createdAt)
	if err == nil {
		if c.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return conversation.Conversation{}, fmt.Errorf("parse created_at: %w", err)
		}
		return c, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return conversation.Conversation{}, fmt.Errorf("get conversation: %w", err)
	}

	c = conversation.Conversation{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO conversations (id, user_id, created_at) VALUES (?, ?, ?)`,
		c.ID, c.UserID, c.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return conversation.Conversation{}, fmt.Errorf("create conversation: %w", err)
	}

	return c, nil
}

// AppendTurn adds a turn at the end of the conversation.
func (r *implRepository) AppendTurn(ctx context.Context, conversationID string, role conversation.Role, content string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO turns (conversation_id, role, content, created_at)
		VALUES (?, ?, ?, ?)`,
		conversationID, string(role), content, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append turn: %w", err)
	}
	return nil
}

// RecentTurns returns the last limit turns in chronological order.
func (r *implRepository) RecentTurns(ctx context.Context, conversationID string, limit int) ([]conversation.Turn, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT role, content, created_at FROM (
			SELECT id, role, content, created_at FROM turns
			WHERE conversation_id = ? ORDER BY id DESC LIMIT ?
		) ORDER BY id`,
		conversationID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent turns: %w", err)
	}
	defer rows.Close()

	var turns []conversation.Turn
	for rows.Next() {
		var (
			t         conversation.Turn
			role      string
			createdAt string
		)
		if err := rows.Scan(&role, &t.Content, &createdAt); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		t.Role = conversation.Role(role)
		if t.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate turns: %w", err)
	}

	return turns, nil
}
