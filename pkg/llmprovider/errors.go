package llmprovider

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderTimeout indicates a provider request timed out
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderRateLimited indicates rate limit exceeded
	ErrProviderRateLimited = errors.New("provider rate limited")

	// ErrModelNotFound indicates the configured model does not exist upstream
	ErrModelNotFound = errors.New("model not found")

	// ErrUnauthorized indicates a missing or rejected credential
	ErrUnauthorized = errors.New("unauthorized")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// RateLimitError reports a 429 along with how long the provider asked us to wait.
type RateLimitError struct {
	Provider   string
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("provider %s rate limited, retry after %s: %s", e.Provider, e.RetryAfter, e.Message)
	}
	return fmt.Sprintf("provider %s rate limited: %s", e.Provider, e.Message)
}

func (e *RateLimitError) Unwrap() error {
	return ErrProviderRateLimited
}

// AsRateLimit extracts the rate limit details from err.
func AsRateLimit(err error) (*RateLimitError, bool) {
	var rl *RateLimitError
	if errors.As(err, &rl) {
		return rl, true
	}
	return nil, false
}

// isTerminal reports errors that will not improve by retrying the same model.
func isTerminal(err error) bool {
	return errors.Is(err, ErrProviderRateLimited) ||
		errors.Is(err, ErrModelNotFound) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrInvalidRequest)
}

// Matches "try again in 1m2.5s" and "try again in 7.3s" from provider messages.
var retryAfterRe = regexp.MustCompile(`(?i)try again in\s+(?:(\d+)m)?([\d.]+)s`)

// RetryAfterFromMessage parses the wait hint some providers put in the error text.
func RetryAfterFromMessage(msg string) time.Duration {
	m := retryAfterRe.FindStringSubmatch(msg)
	if m == nil {
		return 0
	}
	var d time.Duration
	if m[1] != "" {
		mins, _ := strconv.Atoi(m[1])
		d += time.Duration(mins) * time.Minute
	}
	secs, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return d
	}
	return d + time.Duration(secs*float64(time.Second))
}
