package automation

import "context"

// UseCase performs desktop automation. Every method reports its outcome as a Result
// instead of an error so one failing action never affects the others in a turn.
type UseCase interface {
	OpenApp(ctx context.Context, name string) Result
	CloseApp(ctx context.Context, name string) Result
	Play(ctx context.Context, query string) Result
	System(ctx context.Context, command string) Result
	WriteContent(ctx context.Context, topic string) Result
	GoogleSearch(ctx context.Context, topic string) Result
	YouTubeSearch(ctx context.Context, topic string) Result
}
