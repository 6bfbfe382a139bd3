package completion

import "context"

// Message is a single conversation turn sent to the completion service.
type Message struct {
	Role    string // "user" or "assistant"
	Content string
}

// IClient defines the boundary to the remote completion service.
// Implementations are safe for concurrent use.
type IClient interface {
	// Complete sends the conversation and returns the generated reply text.
	Complete(ctx context.Context, messages []Message) (string, error)
}

// New creates a new completion client with the given configuration.
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClient(cfg), nil
}
