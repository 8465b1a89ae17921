package intent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-assistant/pkg/llmprovider"
)

func newTestClassifier(gen llmprovider.Generator) (*LLMClassifier, *[]time.Duration) {
	c := NewClassifier(gen, DefaultLexicon(), &mockLogger{})
	var slept []time.Duration
	c.sleep = func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	return c, &slept
}

func TestClassify_BuildsPromptWithFewShot(t *testing.T) {
	gen := &mockGenerator{responses: []string{"open chrome"}}
	c, _ := newTestClassifier(gen)

	out, err := c.Classify(context.Background(), "open chrome")
	require.NoError(t, err)
	assert.Equal(t, "open chrome", out.Raw)

	require.NotNil(t, gen.lastReq.SystemInstruction)
	system := gen.lastReq.SystemInstruction.Text()
	assert.Contains(t, system, "one task per line")
	assert.Contains(t, system, "'google search (topic)'")

	msgs := gen.lastReq.Messages
	assert.Len(t, msgs, len(fewShot)*2+1)
	assert.Equal(t, "open chrome", msgs[len(msgs)-1].Text())
	assert.Equal(t, llmprovider.RoleAssistant, msgs[1].Role)
}

func TestClassify_PromptFollowsLexicon(t *testing.T) {
	lex, err := NewLexicon([]string{"open", "exit"})
	require.NoError(t, err)

	system := buildSystemPrompt(lex)
	assert.Contains(t, system, "'open (application or website name)'")
	assert.NotContains(t, system, "'play (song name)'")
	assert.True(t, strings.Contains(system, "'general (query)'"))
}

func TestClassify_EmptyUtterance(t *testing.T) {
	gen := &mockGenerator{}
	c, _ := newTestClassifier(gen)

	out, err := c.Classify(context.Background(), "  ")
	require.NoError(t, err)
	assert.Empty(t, out.Raw)
	assert.Equal(t, 0, gen.calls)
}

func TestClassify_RateLimitBacksOffThenSynthesizes(t *testing.T) {
	rl := &llmprovider.RateLimitError{Provider: "groq", RetryAfter: 42 * time.Second}
	wrapped := fmt.Errorf("%w: %w", llmprovider.ErrAllProvidersFailed, rl)
	gen := &mockGenerator{errs: []error{wrapped, wrapped}}
	c, slept := newTestClassifier(gen)

	out, err := c.Classify(context.Background(), "who won the match")
	require.NoError(t, err)
	assert.True(t, out.RateLimited)
	assert.Equal(t, "general who won the match", out.Raw)
	assert.Equal(t, 2, gen.calls)
	assert.Equal(t, []time.Duration{MaxRateLimitBackoff}, *slept, "backoff must be capped")
}

func TestClassify_RateLimitRecovers(t *testing.T) {
	rl := &llmprovider.RateLimitError{Provider: "groq", RetryAfter: 2 * time.Second}
	gen := &mockGenerator{errs: []error{rl, nil}, responses: []string{"", "realtime score"}}
	c, slept := newTestClassifier(gen)

	out, err := c.Classify(context.Background(), "score")
	require.NoError(t, err)
	assert.False(t, out.RateLimited)
	assert.Equal(t, "realtime score", out.Raw)
	assert.Equal(t, []time.Duration{2 * time.Second}, *slept)
}

func TestClassify_HardFailureIsUnavailable(t *testing.T) {
	for _, cause := range []error{llmprovider.ErrNoProvidersConfigured, llmprovider.ErrAllProvidersFailed, errors.New("dial tcp: refused")} {
		gen := &mockGenerator{errs: []error{cause}}
		c, slept := newTestClassifier(gen)

		_, err := c.Classify(context.Background(), "hello")
		assert.True(t, IsUnavailable(err), "cause %v", cause)
		assert.Empty(t, *slept)
	}
}

func TestClassify_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	gen := &mockGenerator{errs: []error{context.Canceled}}
	c, _ := newTestClassifier(gen)

	_, err := c.Classify(ctx, "hello")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, IsUnavailable(err))
}
