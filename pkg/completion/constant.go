package completion

import "time"

const (
	// DefaultBaseURL is the Gemini OpenAI-compatible endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"

	// DefaultModel is the default completion model.
	DefaultModel = "gemini-2.5-flash"

	// DefaultTemperature keeps conversational replies lively but on-topic.
	DefaultTemperature = 0.7

	// DefaultMaxTokens bounds reply length.
	DefaultMaxTokens = 500

	// DefaultTimeout bounds the remote call; the caller falls back to a
	// canned reply on expiry.
	DefaultTimeout = 15 * time.Second
)
