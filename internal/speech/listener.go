package speech

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
	"time"
)

const DefaultMaxListen = 15 * time.Second

// CommandListener runs a speech-to-text command and reads the transcript from its stdout.
type CommandListener struct {
	argv      []string
	maxListen time.Duration
}

// NewCommandListener creates a listener. The command is killed after maxListen.
func NewCommandListener(argv []string, maxListen time.Duration) *CommandListener {
	if maxListen <= 0 {
		maxListen = DefaultMaxListen
	}
	return &CommandListener{argv: argv, maxListen: maxListen}
}

func (l *CommandListener) Listen(ctx context.Context) (string, error) {
	if len(l.argv) == 0 {
		return "", ErrNoCommand
	}

	listenCtx, cancel := context.WithTimeout(ctx, l.maxListen)
	defer cancel()

	out, err := exec.CommandContext(listenCtx, l.argv[0], l.argv[1:]...).Output()
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if errors.Is(listenCtx.Err(), context.DeadlineExceeded) {
			return "", nil
		}
		return "", fmt.Errorf("run %s: %w", l.argv[0], err)
	}
	return strings.Join(strings.Fields(string(out)), " "), nil
}

// LineListener reads one utterance per line, for typed input.
type LineListener struct {
	mu      sync.Mutex
	scanner *bufio.Scanner
}

// NewLineListener reads from r.
func NewLineListener(r io.Reader) *LineListener {
	return &LineListener{scanner: bufio.NewScanner(r)}
}

// Listen returns the next line or io.EOF.
func (l *LineListener) Listen(ctx context.Context) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !l.scanner.Scan() {
		if err := l.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(l.scanner.Text()), nil
}
