package main

import (
	"context"
	"errors"
	"io"
	"sync"

	"voice-assistant/internal/assistant"
	"voice-assistant/internal/display"
	"voice-assistant/internal/ipc"
	"voice-assistant/internal/model"
	"voice-assistant/internal/speech"
	"voice-assistant/pkg/log"
)

// maxListenFailures stops the loop when the listener keeps failing.
const maxListenFailures = 3

// session drives turns from one listener, optionally gated by push-to-talk triggers.
type session struct {
	l          log.Logger
	uc         assistant.UseCase
	presenter  assistant.Presenter
	listener   speech.Listener
	scope      model.Scope
	pushToTalk bool
	trigger    chan struct{}
	status     *statusTracker
}

func newSession(l log.Logger, uc assistant.UseCase, presenter assistant.Presenter, listener speech.Listener, scope model.Scope, pushToTalk bool) *session {
	return &session{
		l:          l,
		uc:         uc,
		presenter:  presenter,
		listener:   listener,
		scope:      scope,
		pushToTalk: pushToTalk,
		trigger:    make(chan struct{}, 1),
		status:     &statusTracker{last: display.StatusIdle},
	}
}

// run listens and processes turns until the input ends, the user says goodbye or ctx is done.
func (s *session) run(ctx context.Context) error {
	failures := 0
	for {
		if s.pushToTalk {
			select {
			case <-ctx.Done():
				return nil
			case <-s.trigger:
			}
		}

		s.presenter.Status(ctx, display.StatusListening)
		text, err := s.listener.Listen(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, speech.ErrNoCommand) {
				return err
			}
			failures++
			s.l.Warnf(ctx, "cmd.assistant.session: listen failed (%d/%d): %v", failures, maxListenFailures, err)
			if failures >= maxListenFailures {
				return err
			}
			continue
		}
		failures = 0
		if text == "" {
			s.presenter.Status(ctx, display.StatusIdle)
			continue
		}

		reply, err := s.uc.Process(ctx, s.scope, assistant.ProcessInput{Utterance: text})
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if !errors.Is(err, assistant.ErrEmptyUtterance) {
				s.l.Errorf(ctx, "cmd.assistant.session: process: %v", err)
			}
			continue
		}
		if reply.Exit {
			return nil
		}
	}
}

// handleControl serves assistant-ctl requests.
func (s *session) handleControl(ctx context.Context, msg ipc.ControlMessage) ipc.Reply {
	switch msg.Cmd {
	case ipc.CmdTrigger:
		if !s.pushToTalk {
			return ipc.Reply{OK: false, Message: "trigger needs --push-to-talk"}
		}
		select {
		case s.trigger <- struct{}{}:
			return ipc.Reply{OK: true, Message: display.StatusListening}
		default:
			return ipc.Reply{OK: false, Message: "already triggered"}
		}

	case ipc.CmdStatus:
		return ipc.Reply{OK: true, Message: s.status.Last()}

	case ipc.CmdSay:
		reply, err := s.uc.Process(ctx, model.Scope{Channel: model.ChannelIPC, UserID: "ipc"}, assistant.ProcessInput{Utterance: msg.Text})
		if err != nil {
			return ipc.Reply{OK: false, Message: err.Error()}
		}
		return ipc.Reply{OK: true, Message: reply.Answer}

	default:
		return ipc.Reply{OK: false, Message: "unknown command " + msg.Cmd}
	}
}

// statusTracker remembers the latest status event.
type statusTracker struct {
	mu   sync.Mutex
	last string
}

func (t *statusTracker) Publish(ctx context.Context, e display.Event) {
	if e.Kind != display.KindStatus {
		return
	}
	t.mu.Lock()
	t.last = e.Text
	t.mu.Unlock()
}

func (t *statusTracker) Last() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last
}
