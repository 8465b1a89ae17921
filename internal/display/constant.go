package display

const (
	StatusListening = "Listening..."
	StatusThinking  = "Thinking..."
	StatusAnswering = "Answering..."
	StatusIdle      = "Available..."

	LogPrefixHub = "internal.display.Hub"

	clientBuffer = 32
)
