package intent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"voice-assistant/pkg/llmprovider"
	"voice-assistant/pkg/log"
)

// Classifier produces raw classifier output for an utterance.
type Classifier interface {
	Classify(ctx context.Context, utterance string) (Classification, error)
}

// LLMClassifier wraps the provider manager with the fixed prompt and few-shot examples.
// The prompt and examples are built once and never mutated.
type LLMClassifier struct {
	llm      llmprovider.Generator
	l        log.Logger
	system   llmprovider.Message
	examples []llmprovider.Message
	maxWait  time.Duration
	sleep    func(ctx context.Context, d time.Duration) error
}

// Ensure LLMClassifier implements Classifier interface
var _ Classifier = (*LLMClassifier)(nil)

// NewClassifier creates a classifier restricted to the categories enabled in lex.
func NewClassifier(llm llmprovider.Generator, lex *Lexicon, l log.Logger) *LLMClassifier {
	c := &LLMClassifier{
		llm:     llm,
		l:       l,
		system:  llmprovider.TextMessage(llmprovider.RoleSystem, buildSystemPrompt(lex)),
		maxWait: MaxRateLimitBackoff,
		sleep:   sleepCtx,
	}
	for _, ex := range fewShot {
		c.examples = append(c.examples,
			llmprovider.TextMessage(llmprovider.RoleUser, ex.query),
			llmprovider.TextMessage(llmprovider.RoleAssistant, ex.answer),
		)
	}
	return c
}

// Classify returns the raw model output for utterance.
// An empty utterance is a no-op. A rate limit is retried once after a bounded backoff
// and then answered with a synthetic general task. Any other failure is reported as
// ErrClassifierUnavailable.
func (c *LLMClassifier) Classify(ctx context.Context, utterance string) (Classification, error) {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return Classification{}, nil
	}

	var rl *llmprovider.RateLimitError
	for attempt := 0; attempt < 2; attempt++ {
		out, err := c.call(ctx, utterance)
		if err == nil {
			return out, nil
		}
		if ctx.Err() != nil {
			return Classification{}, ctx.Err()
		}

		var ok bool
		rl, ok = llmprovider.AsRateLimit(err)
		if !ok {
			return Classification{}, fmt.Errorf("%s: %s: %w: %v", LogPrefixClassify, ErrMsgLLMCallFailed, ErrClassifierUnavailable, err)
		}
		if attempt > 0 {
			break
		}

		wait := c.backoff(rl.RetryAfter)
		c.l.Warnf(ctx, "%s: %s for %s", LogPrefixClassify, ErrMsgRateLimited, wait)
		if err := c.sleep(ctx, wait); err != nil {
			return Classification{}, err
		}
	}

	return Classification{
		Raw:         KindGeneral.String() + " " + utterance,
		RateLimited: true,
		RetryAfter:  rl.RetryAfter,
	}, nil
}

func (c *LLMClassifier) call(ctx context.Context, utterance string) (Classification, error) {
	msgs := make([]llmprovider.Message, 0, len(c.examples)+1)
	msgs = append(msgs, c.examples...)
	msgs = append(msgs, llmprovider.TextMessage(llmprovider.RoleUser, utterance))

	system := c.system
	resp, err := c.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &system,
		Messages:          msgs,
		Temperature:       ClassifierTemperature,
		MaxTokens:         ClassifierMaxTokens,
	})
	if err != nil {
		return Classification{}, err
	}

	raw := resp.Text()
	c.l.Debugf(ctx, "%s: %s/%s -> %q", LogPrefixClassify, resp.ProviderName, resp.ModelName, raw)
	return Classification{Raw: raw, Provider: resp.ProviderName}, nil
}

// backoff bounds the provider's retry hint to maxWait; no hint means the full bound.
func (c *LLMClassifier) backoff(hint time.Duration) time.Duration {
	if hint <= 0 || hint > c.maxWait {
		return c.maxWait
	}
	return hint
}

func buildSystemPrompt(lex *Lexicon) string {
	var sb strings.Builder
	for _, k := range categoryOrder {
		if !lex.Has(k) {
			continue
		}
		sb.WriteString(categoryDescriptions[k])
		sb.WriteString("\n")
	}
	return fmt.Sprintf(PromptClassifierSystem, strings.TrimRight(sb.String(), "\n"))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsUnavailable reports whether err means the caller should route without the classifier.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrClassifierUnavailable)
}
