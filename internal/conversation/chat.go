package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"voice-assistant/internal/model"
	"voice-assistant/pkg/llmprovider"
)

// Chat answers query with the persona prompt and recent chat history.
func (uc *usecase) Chat(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", ErrEmptyQuery
	}

	system := fmt.Sprintf(PromptChatSystem, uc.cfg.Username, uc.cfg.AssistantName)
	return uc.complete(ctx, LogPrefixChat, system, query, ChatTemperature, ChatMaxTokens)
}

// complete sends history plus query and normalises the reply.
// A rate limit becomes MsgRateLimited instead of an error.
func (uc *usecase) complete(ctx context.Context, prefix, system, query string, temperature float64, maxTokens int) (string, error) {
	sys := llmprovider.TextMessage(llmprovider.RoleSystem, system)
	req := &llmprovider.Request{
		SystemInstruction: &sys,
		Messages:          append(uc.recent(ctx, prefix), llmprovider.TextMessage(llmprovider.RoleUser, query)),
		Temperature:       temperature,
		MaxTokens:         maxTokens,
	}

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		if rl, ok := llmprovider.AsRateLimit(err); ok {
			uc.l.Warnf(ctx, "%s: rate limited by %s (retry after %s)", prefix, rl.Provider, rl.RetryAfter)
			return MsgRateLimited, nil
		}
		if errors.Is(err, llmprovider.ErrProviderRateLimited) {
			uc.l.Warnf(ctx, "%s: rate limited: %v", prefix, err)
			return MsgRateLimited, nil
		}
		uc.l.Errorf(ctx, "%s: llm.GenerateContent: %v", prefix, err)
		return "", fmt.Errorf("%s: %w", prefix, err)
	}

	answer := strings.TrimSpace(strings.ReplaceAll(resp.Text(), endOfSequence, ""))
	if answer == "" {
		return "", ErrEmptyAnswer
	}
	return answer, nil
}

// recent maps the latest chat log entries to model messages. Read errors are logged and ignored.
func (uc *usecase) recent(ctx context.Context, prefix string) []llmprovider.Message {
	if uc.history == nil {
		return nil
	}
	entries, err := uc.history.Recent(ctx, uc.cfg.HistoryLimit)
	if err != nil {
		uc.l.Warnf(ctx, "%s: history.Recent: %v", prefix, err)
		return nil
	}

	msgs := make([]llmprovider.Message, 0, len(entries)+1)
	for _, e := range entries {
		role := llmprovider.RoleUser
		if e.Role == model.RoleAssistant {
			role = llmprovider.RoleAssistant
		}
		msgs = append(msgs, llmprovider.TextMessage(role, e.Content))
	}
	return msgs
}

// information is the date and time block handed to the realtime model.
func information(now time.Time) string {
	var b strings.Builder
	b.WriteString("Use This Real-time Information if needed:\n")
	fmt.Fprintf(&b, "Day: %s\n", now.Format("Monday"))
	fmt.Fprintf(&b, "Date: %s\n", now.Format("02"))
	fmt.Fprintf(&b, "Month: %s\n", now.Format("January"))
	fmt.Fprintf(&b, "Year: %s\n", now.Format("2006"))
	fmt.Fprintf(&b, "Time: %s hours, %s minutes, %s seconds.\n", now.Format("15"), now.Format("04"), now.Format("05"))
	return b.String()
}
