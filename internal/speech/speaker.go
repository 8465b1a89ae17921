package speech

import (
	"context"
	"os/exec"
	"strings"
	"sync"
	"time"

	pkgLog "voice-assistant/pkg/log"
)

const speakTimeout = 2 * time.Minute

// CommandSpeaker pipes text into a text-to-speech command such as espeak-ng.
// Lines are spoken one at a time in the order they were submitted.
type CommandSpeaker struct {
	argv  []string
	queue chan string
	wg    sync.WaitGroup
	once  sync.Once
	l     pkgLog.Logger
}

// NewCommandSpeaker starts the speaking loop. Call Close to stop it.
func NewCommandSpeaker(argv []string, l pkgLog.Logger) *CommandSpeaker {
	s := &CommandSpeaker{argv: argv, queue: make(chan string, 16), l: l}
	s.wg.Add(1)
	go s.loop()
	return s
}

// Speak queues text and returns at once. It returns false when the text was not queued.
func (s *CommandSpeaker) Speak(ctx context.Context, text string) bool {
	text = strings.TrimSpace(text)
	if len(s.argv) == 0 || text == "" {
		return false
	}
	select {
	case s.queue <- text:
		return true
	default:
		s.l.Warnf(ctx, "internal.speech.Speak: queue full, dropping line")
		return false
	}
}

// Close finishes queued lines and stops the loop.
func (s *CommandSpeaker) Close() {
	s.once.Do(func() { close(s.queue) })
	s.wg.Wait()
}

func (s *CommandSpeaker) loop() {
	defer s.wg.Done()
	for text := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), speakTimeout)
		cmd := exec.CommandContext(ctx, s.argv[0], s.argv[1:]...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err != nil {
			s.l.Warnf(ctx, "internal.speech.loop: %s: %v", s.argv[0], err)
		}
		cancel()
	}
}
