package chatlog

import (
	"context"

	"voice-assistant/internal/model"
)

// Repository persists the conversation log.
type Repository interface {
	// Load returns the whole log. A missing or unreadable file yields an empty log.
	Load(ctx context.Context) ([]model.ChatEntry, error)

	// Recent returns at most n of the latest entries, oldest first.
	Recent(ctx context.Context, n int) ([]model.ChatEntry, error)

	// Append adds entries at the end of the log.
	Append(ctx context.Context, entries ...model.ChatEntry) error

	// Transact runs fn with the current log and writes back what it returns,
	// all inside one critical section.
	Transact(ctx context.Context, fn func(entries []model.ChatEntry) ([]model.ChatEntry, error)) error

	// Seed writes the greeting pair when the log is empty.
	Seed(ctx context.Context, assistantName, username string) error
}
