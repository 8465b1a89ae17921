package reminder

import (
	"context"
	"time"
)

// UseCase turns spoken reminder instructions into calendar events.
type UseCase interface {
	Create(ctx context.Context, instruction string) Result
	Upcoming(ctx context.Context, within time.Duration) ([]Entry, error)
}
