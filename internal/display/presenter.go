package display

import (
	"context"
	"time"

	pkgLog "voice-assistant/pkg/log"
)

// Presenter fans events out to every sink and speaks answers.
type Presenter struct {
	sinks   []Sink
	speaker Speaker
	now     func() time.Time
}

// NewPresenter creates a presenter. speaker may be nil.
func NewPresenter(speaker Speaker, sinks ...Sink) *Presenter {
	return &Presenter{sinks: sinks, speaker: speaker, now: time.Now}
}

func (p *Presenter) publish(ctx context.Context, kind Kind, text string) {
	e := Event{Kind: kind, TurnID: pkgLog.TurnID(ctx), Text: text, At: p.now()}
	for _, s := range p.sinks {
		s.Publish(ctx, e)
	}
}

// Status shows a transient state such as StatusThinking.
func (p *Presenter) Status(ctx context.Context, text string) {
	p.publish(ctx, KindStatus, text)
}

// User echoes what the user said.
func (p *Presenter) User(ctx context.Context, text string) {
	p.publish(ctx, KindUser, text)
}

// Answer shows text as the assistant's reply.
func (p *Presenter) Answer(ctx context.Context, text string) {
	p.publish(ctx, KindAnswer, text)
}

// Notice shows a remark that is never spoken.
func (p *Presenter) Notice(ctx context.Context, text string) {
	p.publish(ctx, KindNotice, text)
}

// Say shows text as an answer and reads it aloud.
func (p *Presenter) Say(ctx context.Context, text string) {
	p.Answer(ctx, text)
	if p.speaker != nil {
		p.speaker.Speak(ctx, text)
	}
}
