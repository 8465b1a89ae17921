package gemini

import (
	"fmt"
	"net/http"
	"time"

	"google.golang.org/genai"
)

// Config holds Gemini client configuration
type Config struct {
	APIKey string
	Model  string
	// APIURL overrides the endpoint, mostly for tests.
	APIURL     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("gemini: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

// geminiImpl is the internal implementation of IGemini
type geminiImpl struct {
	client *genai.Client
	model  string
}

// Content is one turn of the conversation. Role is "user" or "model".
type Content struct {
	Role string
	Text string
}

// Request represents a Gemini generation request
type Request struct {
	SystemInstruction string
	Contents          []Content
	Temperature       float64
	MaxTokens         int
}

// Response represents a Gemini generation response
type Response struct {
	Text  string
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
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: API error %d: %s", e.StatusCode, e.Message)
}
