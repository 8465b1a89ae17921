package conversation

import "time"

// Config holds persona and prompt settings.
type Config struct {
	AssistantName string
	Username      string
	// HistoryLimit is how many chat log entries are replayed to the model.
	HistoryLimit int
	// SearchResults is how many web results feed a realtime answer.
	SearchResults int
	Location      *time.Location
}
