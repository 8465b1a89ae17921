package usecase

import (
	"context"

	"voice-assistant/internal/assistant"
	"voice-assistant/internal/chatlog"
	"voice-assistant/internal/conversation"
	"voice-assistant/internal/dispatch"
	"voice-assistant/internal/intent"
	pkgLog "voice-assistant/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	intent     intent.UseCase
	dispatcher dispatch.UseCase
	chatter    conversation.Chatter
	answerer   conversation.Answerer
	history    chatlog.Repository
	present    assistant.Presenter
	// turn holds one token while a turn is running.
	turn chan struct{}
}

// Ensure implUseCase implements assistant.UseCase interface
var _ assistant.UseCase = (*implUseCase)(nil)

// New creates the assistant use case. history and present may be nil.
func New(
	l pkgLog.Logger,
	intentUC intent.UseCase,
	dispatcher dispatch.UseCase,
	chatter conversation.Chatter,
	answerer conversation.Answerer,
	history chatlog.Repository,
	present assistant.Presenter,
) assistant.UseCase {
	if present == nil {
		present = nopPresenter{}
	}
	return &implUseCase{
		l:          l,
		intent:     intentUC,
		dispatcher: dispatcher,
		chatter:    chatter,
		answerer:   answerer,
		history:    history,
		present:    present,
		turn:       make(chan struct{}, 1),
	}
}

type nopPresenter struct{}

func (nopPresenter) Status(context.Context, string) {}
func (nopPresenter) User(context.Context, string)   {}
func (nopPresenter) Answer(context.Context, string) {}
func (nopPresenter) Notice(context.Context, string) {}
func (nopPresenter) Say(context.Context, string)    {}
