package conversation

import "time"

// Role identifies the author of a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Conversation is a single chat thread owned by one user.
type Conversation struct {
	ID        string
	UserID    string
	CreatedAt time.Time
}

// Turn is one message inside a conversation.
type Turn struct {
	Role      Role
	Content   string
	CreatedAt time.Time
}
