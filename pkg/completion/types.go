package completion

import (
	"errors"
	"net/http"
	"time"
)

// Config configures the completion client. The endpoint must speak the
// OpenAI chat-completions protocol; Gemini's OpenAI-compatible surface and
// self-hosted gateways both qualify.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration

	// HTTPClient overrides the transport, used by tests.
	HTTPClient *http.Client
}

// Validate checks required fields and applies defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("completion: api key is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Temperature == 0 {
		c.Temperature = DefaultTemperature
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

// Role constants for Message.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
