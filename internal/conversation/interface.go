package conversation

import "context"

// Repository is the conversation log collaborator. The chat interpreter
// appends turns but does not own the log's lifecycle.
type Repository interface {
	// GetOrCreate returns the user's most recent conversation, creating one
	// when the user has none.
	GetOrCreate(ctx context.Context, userID string) (Conversation, error)

	// AppendTurn adds a turn at the end of the conversation.
	AppendTurn(ctx context.Context, conversationID string, role Role, content string) error

	// RecentTurns returns the last limit turns in chronological order.
	RecentTurns(ctx context.Context, conversationID string, limit int) ([]Turn, error)
}
