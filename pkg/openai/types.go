package openai

import (
	"fmt"
	"net/http"
	"time"

	oai "github.com/openai/openai-go/v3"
)

// Config holds client configuration
type Config struct {
	// Provider selects default base URL and model when they are empty.
	Provider   string
	APIKey     string
	Model      string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openai: APIKey is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURLs[c.Provider]
	}
	if c.BaseURL == "" {
		return fmt.Errorf("openai: BaseURL is required for provider %q", c.Provider)
	}
	if c.Model == "" {
		c.Model = DefaultModels[c.Provider]
	}
	if c.Model == "" {
		return fmt.Errorf("openai: Model is required")
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

// clientImpl is the internal implementation of IClient
type clientImpl struct {
	client oai.Client
	model  string
}

// Message is one chat message. Role is system, user or assistant.
type Message struct {
	Role    string
	Content string
}

// Request represents a chat completion request
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Response represents a chat completion response
type Response struct {
	Text  string
	Model string
	Usage Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// APIError is returned for non 2xx responses.
type APIError struct {
	StatusCode int
	Message    string
	// RetryAfter is taken from the Retry-After header when the server sends one.
	RetryAfter time.Duration
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openai: API error %d: %s", e.StatusCode, e.Message)
}
