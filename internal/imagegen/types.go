package imagegen

// JobID identifies one image generation request.
type JobID string

// Notification reports a finished job.
type Notification struct {
	JobID   JobID
	Prompt  string
	Files   []string
	OK      bool
	Message string
}

// Options configures the image service. Zero values take package defaults.
type Options struct {
	DataDir    string
	ImageCount int
	// OpenResults shows every image once saved.
	OpenResults bool
	// OnDone is called for every finished job, after the channel publish.
	OnDone func(Notification)
}
