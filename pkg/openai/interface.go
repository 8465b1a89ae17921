package openai

import "context"

// IClient talks to any OpenAI compatible chat completion endpoint.
// Implementations are safe for concurrent use.
type IClient interface {
	// Complete sends a chat completion request.
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new client with the given configuration
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientImpl(cfg), nil
}
