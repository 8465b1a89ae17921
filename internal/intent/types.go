package intent

import "time"

// Kind is the tagged variant of a Task. The dispatcher switches on it.
type Kind int

const (
	KindUnknown Kind = iota
	KindOpen
	KindClose
	KindPlay
	KindSystem
	KindContent
	KindGoogleSearch
	KindYouTubeSearch
	KindGenerateImage
	KindSendEmail
	KindReminder
	KindGeneral
	KindRealtime
	KindExit
)

// Family groups kinds that share a dispatch strategy.
type Family string

const (
	FamilyAutomation     Family = "automation"
	FamilyImage          Family = "image"
	FamilyEmail          Family = "email"
	FamilyReminder       Family = "reminder"
	FamilyConversational Family = "conversational"
	FamilyExit           Family = "exit"
)

// Task is one normalized instruction derived from an utterance.
type Task struct {
	Kind     Kind
	Argument string
}

// Classification is the raw classifier output for one call.
type Classification struct {
	Raw         string
	Provider    string
	RateLimited bool
	RetryAfter  time.Duration
}

// Decision is the validated, ordered task list for one utterance.
type Decision struct {
	Tasks []Task
	// Raw is the last classifier output, empty for direct and fallback routing.
	Raw      string
	Attempts int
	// Exhausted is set when the retry bound was hit and Tasks is the general fallback.
	Exhausted   bool
	RateLimited bool
	Fallback    bool
	Direct      bool
	Cached      bool
	// Notice is a user visible remark about how the decision was made.
	Notice string
}
