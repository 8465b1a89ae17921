package display

import "time"

// Kind tells clients how to render an Event.
type Kind string

const (
	KindStatus Kind = "status"
	KindUser   Kind = "user"
	KindAnswer Kind = "answer"
	KindNotice Kind = "notice"
)

// Event is one line shown to the user.
type Event struct {
	Kind   Kind      `json:"kind"`
	TurnID string    `json:"turn_id,omitempty"`
	Text   string    `json:"text"`
	At     time.Time `json:"at"`
}
