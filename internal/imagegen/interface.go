package imagegen

import "context"

// UseCase generates images in the background.
type UseCase interface {
	// Start validates prompt and returns immediately. Completion is published on
	// Notifications and passed to Options.OnDone.
	Start(ctx context.Context, prompt string) (JobID, error)

	// Notifications delivers one Notification per finished job.
	Notifications() <-chan Notification

	// Close cancels running jobs and waits for them to finish.
	Close()
}

// Opener shows a generated file to the user.
type Opener interface {
	OpenFile(ctx context.Context, path string) error
}
