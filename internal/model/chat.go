package model

import "time"

// Role is the author of a conversation log entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatEntry is one record of the conversation log. Entries are appended, never edited.
type ChatEntry struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Turn summarizes one processed utterance for display and delivery channels.
type Turn struct {
	ID          string
	Channel     Channel
	Utterance   string
	StartedAt   time.Time
	CompletedAt time.Time
}
