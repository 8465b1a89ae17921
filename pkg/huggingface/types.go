package huggingface

import "fmt"

// TextToImageRequest is the request body for the inference API.
type TextToImageRequest struct {
	Inputs     string      `json:"inputs"`
	Parameters *Parameters `json:"parameters,omitempty"`
}

// Parameters are optional generation settings.
type Parameters struct {
	Seed int64 `json:"seed,omitempty"`
}

// ErrorResponse is the error body returned by the inference API.
type ErrorResponse struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time,omitempty"` // Seconds until the model is loaded
}

// APIError is a non-200 answer from the inference API.
type APIError struct {
	StatusCode    int
	Message       string
	EstimatedTime float64
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("huggingface API error: %d", e.StatusCode)
	}
	return fmt.Sprintf("huggingface API error (%d): %s", e.StatusCode, e.Message)
}
