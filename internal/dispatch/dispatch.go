package dispatch

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"voice-assistant/internal/automation"
	"voice-assistant/internal/imagegen"
	"voice-assistant/internal/intent"
	"voice-assistant/internal/model"
)

// Dispatch fans the actionable tasks out and collects results by index.
// An exit task anywhere ends the turn before anything runs.
func (uc *usecase) Dispatch(ctx context.Context, sc model.Scope, utterance string, tasks []intent.Task) Outcome {
	results := make([]Result, len(tasks))
	for i, t := range tasks {
		results[i].Task = t
	}

	if idx := exitIndex(tasks); idx >= 0 {
		uc.l.Infof(ctx, "%s: exit requested, skipping %d other task(s)", LogPrefixDispatch, len(tasks)-1)
		for i := range results {
			results[i].Skipped = i != idx
		}
		results[idx].OK = true
		results[idx].Status = uc.opts.Farewell
		if uc.out != nil {
			uc.out.Say(ctx, uc.opts.Farewell)
		}
		if uc.terminate != nil && sc.Local() {
			uc.terminate()
		}
		return Outcome{Results: results, Exit: true}
	}

	var g errgroup.Group
	g.SetLimit(uc.opts.MaxParallel)
	for i, t := range tasks {
		if t.Family() == intent.FamilyConversational {
			results[i].Deferred = true
			continue
		}
		if !sc.MayAct() {
			uc.l.Warnf(ctx, "%s: refused %q from untrusted %s sender %s", LogPrefixDispatch, t, sc.Channel, sc.UserID)
			results[i].Status = MsgNotPermitted
			results[i].Refused = true
			continue
		}
		g.Go(func() error {
			results[i] = uc.run(ctx, t)
			return nil
		})
	}
	_ = g.Wait()

	uc.l.Debugf(ctx, "%s: utterance=%q tasks=%d", LogPrefixDispatch, utterance, len(tasks))
	return Outcome{Results: results}
}

// run executes one task. A panic becomes a failed result.
func (uc *usecase) run(ctx context.Context, t intent.Task) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "%s: task %q panicked: %v", LogPrefixDispatch, t, r)
			res = Result{Task: t, Status: msgCrashed}
		}
	}()

	switch t.Family() {
	case intent.FamilyAutomation:
		return uc.runAutomation(ctx, t)
	case intent.FamilyEmail:
		return uc.runEmail(ctx, t)
	case intent.FamilyImage:
		return uc.runImage(ctx, t)
	case intent.FamilyReminder:
		return uc.runReminder(ctx, t)
	default:
		uc.l.Warnf(ctx, "%s: unsupported task %q", LogPrefixDispatch, t)
		return Result{Task: t, Status: msgUnsupported}
	}
}

func (uc *usecase) runAutomation(ctx context.Context, t intent.Task) Result {
	a := uc.deps.Automation
	if a == nil {
		return unavailable(t, "Automation")
	}

	var r automation.Result
	switch t.Kind {
	case intent.KindOpen:
		r = a.OpenApp(ctx, t.Argument)
	case intent.KindClose:
		r = a.CloseApp(ctx, t.Argument)
	case intent.KindPlay:
		r = a.Play(ctx, t.Argument)
	case intent.KindSystem:
		r = a.System(ctx, t.Argument)
	case intent.KindContent:
		r = a.WriteContent(ctx, t.Argument)
	case intent.KindGoogleSearch:
		r = a.GoogleSearch(ctx, t.Argument)
	case intent.KindYouTubeSearch:
		r = a.YouTubeSearch(ctx, t.Argument)
	default:
		return Result{Task: t, Status: msgUnsupported}
	}
	return Result{Task: t, OK: r.OK, Status: r.Message}
}

func (uc *usecase) runEmail(ctx context.Context, t intent.Task) Result {
	if uc.deps.Email == nil {
		return unavailable(t, "Email")
	}
	out := uc.deps.Email.Send(ctx, t.Argument)
	return Result{Task: t, OK: out.OK, Status: out.Message, Recipients: out.Recipients}
}

func (uc *usecase) runImage(ctx context.Context, t intent.Task) Result {
	if uc.deps.Images == nil {
		return unavailable(t, "Image generation")
	}
	if _, err := uc.deps.Images.Start(ctx, t.Argument); err != nil {
		uc.l.Warnf(ctx, "%s: images.Start: %v", LogPrefixDispatch, err)
		if errors.Is(err, imagegen.ErrEmptyPrompt) {
			return Result{Task: t, Status: msgEmptyPrompt}
		}
		return Result{Task: t, Status: msgImageFailed}
	}
	return Result{Task: t, OK: true, Status: fmt.Sprintf(imagegen.MsgInProgress, t.Argument)}
}

func (uc *usecase) runReminder(ctx context.Context, t intent.Task) Result {
	if uc.deps.Reminders == nil {
		return unavailable(t, "Reminders")
	}
	r := uc.deps.Reminders.Create(ctx, t.Argument)
	return Result{Task: t, OK: r.OK, Status: r.Message}
}

func unavailable(t intent.Task, what string) Result {
	return Result{Task: t, Status: fmt.Sprintf(msgUnavailable, what)}
}

func exitIndex(tasks []intent.Task) int {
	for i, t := range tasks {
		if t.Kind == intent.KindExit {
			return i
		}
	}
	return -1
}
