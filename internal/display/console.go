package display

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Console prints events as plain lines.
type Console struct {
	mu            sync.Mutex
	w             io.Writer
	assistantName string
	username      string
	// ShowStatus prints status events too.
	ShowStatus bool
}

// NewConsole creates a console sink writing to w.
func NewConsole(w io.Writer, assistantName, username string) *Console {
	return &Console{w: w, assistantName: assistantName, username: username}
}

func (c *Console) Publish(ctx context.Context, e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch e.Kind {
	case KindStatus:
		if c.ShowStatus {
			fmt.Fprintf(c.w, "  %s\n", e.Text)
		}
	case KindUser:
		fmt.Fprintf(c.w, "%s : %s\n", c.username, e.Text)
	case KindAnswer:
		fmt.Fprintf(c.w, "%s : %s\n", c.assistantName, e.Text)
	case KindNotice:
		fmt.Fprintf(c.w, "%s\n", e.Text)
	}
}
