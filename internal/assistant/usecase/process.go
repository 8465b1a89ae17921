package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"voice-assistant/internal/assistant"
	"voice-assistant/internal/display"
	"voice-assistant/internal/intent"
	"voice-assistant/internal/model"
	pkgLog "voice-assistant/pkg/log"
)

// Process runs one turn. Turns never overlap: a second caller waits for the first
// to finish or for its own context to end.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input assistant.ProcessInput) (assistant.Reply, error) {
	utterance := strings.TrimSpace(input.Utterance)
	if utterance == "" {
		return assistant.Reply{}, assistant.ErrEmptyUtterance
	}

	select {
	case uc.turn <- struct{}{}:
	case <-ctx.Done():
		return assistant.Reply{}, ctx.Err()
	}
	defer func() { <-uc.turn }()

	turnID := uuid.NewString()
	ctx = pkgLog.WithTurn(ctx, turnID)
	ctx = pkgLog.WithChannel(ctx, string(sc.Channel))
	uc.l.Infof(ctx, "%s: user=%s utterance=%q", LogPrefixProcess, sc.UserID, utterance)

	uc.present.User(ctx, utterance)
	uc.present.Status(ctx, display.StatusThinking)
	defer uc.present.Status(ctx, display.StatusIdle)

	decision, err := uc.decide(ctx, utterance)
	if err != nil {
		uc.l.Errorf(ctx, "%s: decide: %v", LogPrefixProcess, err)
		return assistant.Reply{}, err
	}
	uc.l.Infof(ctx, "%s: tasks=%v direct=%t fallback=%t attempts=%d", LogPrefixProcess,
		decision.Tasks, decision.Direct, decision.Fallback, decision.Attempts)

	reply := assistant.Reply{TurnID: turnID, Utterance: utterance, Tasks: decision.Tasks}
	if decision.Notice != "" {
		reply.Notices = append(reply.Notices, decision.Notice)
		uc.present.Notice(ctx, decision.Notice)
	}

	outcome := uc.dispatcher.Dispatch(ctx, sc, utterance, decision.Tasks)
	reply.Results = outcome.Results
	reply.StatusLines = outcome.StatusLines()
	if outcome.Exit {
		reply.Exit = true
		for _, r := range outcome.Results {
			if r.Task.Kind == intent.KindExit {
				reply.Answer = r.Status
			}
		}
		return reply, nil
	}
	for _, line := range reply.StatusLines {
		uc.present.Notice(ctx, line)
	}

	uc.present.Status(ctx, display.StatusAnswering)
	ans := uc.merge(ctx, utterance, decision.Tasks, outcome)
	reply.Answer = ans.text
	if ans.text != "" {
		uc.present.Say(ctx, ans.text)
	}
	if ans.conversational {
		uc.record(ctx, ans.query, ans.text)
	}
	return reply, nil
}

// decide prefers direct matches, then the classifier, then the fallback router.
func (uc *implUseCase) decide(ctx context.Context, utterance string) (intent.Decision, error) {
	if d, ok := uc.intent.Direct(utterance); ok {
		return d, nil
	}
	d, err := uc.intent.Decide(ctx, utterance)
	if err == nil {
		return d, nil
	}
	if intent.IsUnavailable(err) {
		uc.l.Warnf(ctx, "%s: classifier unavailable, routing heuristically: %v", LogPrefixProcess, err)
		return uc.intent.Route(ctx, utterance), nil
	}
	return intent.Decision{}, err
}

// record appends the exchange to the conversation log in one critical section.
func (uc *implUseCase) record(ctx context.Context, query, answer string) {
	if uc.history == nil {
		return
	}
	err := uc.history.Transact(ctx, func(entries []model.ChatEntry) ([]model.ChatEntry, error) {
		return append(entries,
			model.ChatEntry{Role: model.RoleUser, Content: query},
			model.ChatEntry{Role: model.RoleAssistant, Content: answer},
		), nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: history.Transact: %v", LogPrefixProcess, err)
	}
}

// History returns the latest log entries.
func (uc *implUseCase) History(ctx context.Context, limit int) ([]model.ChatEntry, error) {
	if uc.history == nil {
		return nil, nil
	}
	return uc.history.Recent(ctx, limit)
}
