package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"voice-assistant/internal/automation"
	"voice-assistant/internal/imagegen"
	"voice-assistant/internal/intent"
)

type stubClassifier struct {
	raw   map[string]string
	down  bool
	calls int
}

func (c *stubClassifier) Classify(ctx context.Context, utterance string) (intent.Classification, error) {
	c.calls++
	if c.down {
		return intent.Classification{}, fmt.Errorf("all providers: %w", intent.ErrClassifierUnavailable)
	}
	return intent.Classification{Raw: c.raw[utterance], Provider: "stub"}, nil
}

type stubAutomation struct {
	mu    sync.Mutex
	calls []string
}

func (a *stubAutomation) done(kind, arg string) automation.Result {
	a.mu.Lock()
	a.calls = append(a.calls, kind+" "+arg)
	a.mu.Unlock()
	return automation.Result{OK: true, Message: "ok"}
}

func (a *stubAutomation) OpenApp(ctx context.Context, name string) automation.Result {
	return a.done("open", name)
}
func (a *stubAutomation) CloseApp(ctx context.Context, name string) automation.Result {
	return a.done("close", name)
}
func (a *stubAutomation) Play(ctx context.Context, q string) automation.Result {
	return a.done("play", q)
}
func (a *stubAutomation) System(ctx context.Context, c string) automation.Result {
	return a.done("system", c)
}
func (a *stubAutomation) WriteContent(ctx context.Context, topic string) automation.Result {
	return a.done("content", topic)
}
func (a *stubAutomation) GoogleSearch(ctx context.Context, topic string) automation.Result {
	return a.done("google search", topic)
}
func (a *stubAutomation) YouTubeSearch(ctx context.Context, topic string) automation.Result {
	return a.done("youtube search", topic)
}

type stubImages struct {
	mu      sync.Mutex
	prompts []string
}

func (s *stubImages) Start(ctx context.Context, prompt string) (imagegen.JobID, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.mu.Unlock()
	return "job", nil
}
func (s *stubImages) Notifications() <-chan imagegen.Notification { return nil }
func (s *stubImages) Close()                                      {}

// stubConversation answers every query with a canned text and tracks overlap.
type stubConversation struct {
	mu        sync.Mutex
	chats     []string
	answers   []string
	reply     string
	err       error
	delay     time.Duration
	inflight  int
	maxFlight int
}

func (s *stubConversation) enter() {
	s.mu.Lock()
	s.inflight++
	if s.inflight > s.maxFlight {
		s.maxFlight = s.inflight
	}
	s.mu.Unlock()
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	s.mu.Lock()
	s.inflight--
	s.mu.Unlock()
}

func (s *stubConversation) Chat(ctx context.Context, query string) (string, error) {
	s.enter()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chats = append(s.chats, query)
	return s.reply, s.err
}

func (s *stubConversation) Answer(ctx context.Context, query string) (string, error) {
	s.enter()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers = append(s.answers, query)
	return s.reply, s.err
}

type recordingPresenter struct {
	mu      sync.Mutex
	notices []string
	said    []string
}

func (p *recordingPresenter) Status(context.Context, string) {}
func (p *recordingPresenter) User(context.Context, string)   {}
func (p *recordingPresenter) Answer(context.Context, string) {}
func (p *recordingPresenter) Notice(ctx context.Context, text string) {
	p.mu.Lock()
	p.notices = append(p.notices, text)
	p.mu.Unlock()
}
func (p *recordingPresenter) Say(ctx context.Context, text string) {
	p.mu.Lock()
	p.said = append(p.said, text)
	p.mu.Unlock()
}
