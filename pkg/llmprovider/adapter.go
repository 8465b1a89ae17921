package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"voice-assistant/pkg/gemini"
	"voice-assistant/pkg/openai"
)

// OpenAIAdapter adapts pkg/openai to llmprovider.Provider interface.
// One adapter serves every OpenAI compatible vendor (groq, openai, deepseek, qwen...).
type OpenAIAdapter struct {
	name   string
	client openai.IClient
}

// NewOpenAIAdapter creates a new OpenAI compatible adapter
func NewOpenAIAdapter(name string, client openai.IClient) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	oaReq := &openai.Request{
		Messages:    make([]openai.Message, 0, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		oaReq.System = req.SystemInstruction.Text()
	}
	for _, msg := range req.Messages {
		oaReq.Messages = append(oaReq.Messages, openai.Message{Role: msg.Role, Content: msg.Text()})
	}

	resp, err := a.client.Complete(ctx, oaReq)
	if err != nil {
		return nil, a.classify(err)
	}

	return &Response{
		Content:      TextMessage(RoleAssistant, resp.Text),
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

func (a *OpenAIAdapter) classify(err error) error {
	var apiErr *openai.APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	retryAfter := apiErr.RetryAfter
	if retryAfter == 0 {
		retryAfter = RetryAfterFromMessage(apiErr.Message)
	}
	return classifyStatus(a.name, apiErr.StatusCode, apiErr.Message, retryAfter, err)
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	gReq := &gemini.Request{
		Contents:    make([]gemini.Content, 0, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		gReq.SystemInstruction = req.SystemInstruction.Text()
	}
	for _, msg := range req.Messages {
		role := "user"
		if msg.Role == RoleAssistant {
			role = "model"
		}
		gReq.Contents = append(gReq.Contents, gemini.Content{Role: role, Text: msg.Text()})
	}

	resp, err := a.client.GenerateContent(ctx, gReq)
	if err != nil {
		var apiErr *gemini.APIError
		if errors.As(err, &apiErr) {
			return nil, classifyStatus("gemini", apiErr.StatusCode, apiErr.Message,
				RetryAfterFromMessage(apiErr.Message), err)
		}
		return nil, err
	}

	return &Response{
		Content:      TextMessage(RoleAssistant, resp.Text),
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// classifyStatus maps an HTTP status onto the package sentinels.
func classifyStatus(provider string, status int, msg string, retryAfter time.Duration, cause error) error {
	switch status {
	case http.StatusTooManyRequests:
		return &RateLimitError{Provider: provider, RetryAfter: retryAfter, Message: msg}
	case http.StatusNotFound:
		return fmt.Errorf("%w: %v", ErrModelNotFound, cause)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %v", ErrUnauthorized, cause)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %v", ErrInvalidRequest, cause)
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return fmt.Errorf("%w: %v", ErrProviderTimeout, cause)
	default:
		return cause
	}
}
