package usecase

import (
	"context"
	"regexp"
	"strings"

	"voice-assistant/internal/dispatch"
	"voice-assistant/internal/intent"
)

var infoRequestRe = regexp.MustCompile(`(?i)\b(?:tell\s+me|describe|explain|about|details|information|specs?|history|compare)\b`)

type answer struct {
	text  string
	query string
	// conversational is set when a model answered and the exchange belongs in the log.
	conversational bool
}

// merge produces the single answer of a turn from the deferred conversational tasks.
func (uc *implUseCase) merge(ctx context.Context, utterance string, tasks []intent.Task, outcome dispatch.Outcome) answer {
	var args, generalArgs, realtimeArgs []string
	for _, t := range outcome.Deferred() {
		arg := strings.TrimSpace(t.Argument)
		switch t.Kind {
		case intent.KindGeneral:
			generalArgs = appendNonEmpty(generalArgs, arg)
		case intent.KindRealtime:
			realtimeArgs = appendNonEmpty(realtimeArgs, arg)
		}
		args = appendNonEmpty(args, arg)
	}
	hasGeneral := countKind(outcome.Deferred(), intent.KindGeneral) > 0
	hasRealtime := countKind(outcome.Deferred(), intent.KindRealtime) > 0

	images := countFamily(outcome, intent.FamilyImage) > 0
	if images && !infoRequestRe.MatchString(utterance) {
		// The classifier tends to echo the image request as a general task.
		hasGeneral = false
		if !hasRealtime {
			return answer{text: acknowledgment(outcome)}
		}
	}

	switch {
	case hasGeneral && hasRealtime:
		return uc.ask(ctx, intent.KindRealtime, joinOr(args, utterance))
	case hasRealtime:
		return uc.ask(ctx, intent.KindRealtime, joinOr(realtimeArgs, utterance))
	case hasGeneral:
		return uc.ask(ctx, intent.KindGeneral, joinOr(generalArgs, utterance))
	case len(tasks) == 0:
		return uc.ask(ctx, intent.KindGeneral, utterance)
	case outcome.OnlyImages():
		// Image turn that also asked for information.
		return uc.ask(ctx, intent.KindGeneral, utterance)
	case outcome.Executed() > 0:
		return answer{text: MsgDone}
	case outcome.Refused() > 0:
		return answer{text: dispatch.MsgNotPermitted}
	default:
		return uc.ask(ctx, intent.KindGeneral, utterance)
	}
}

// ask calls the chat or realtime collaborator once. Failures become a plain message.
func (uc *implUseCase) ask(ctx context.Context, kind intent.Kind, query string) answer {
	query = QueryModifier(query)

	var (
		text string
		err  error
	)
	if kind == intent.KindRealtime {
		text, err = uc.answerer.Answer(ctx, query)
	} else {
		text, err = uc.chatter.Chat(ctx, query)
	}
	if err != nil {
		uc.l.Errorf(ctx, "%s: %s %q: %v", LogPrefixMerge, kind, query, err)
		return answer{text: MsgAnswerFailed, query: query}
	}

	text = AnswerModifier(text)
	if text == "" {
		return answer{text: MsgAnswerFailed, query: query}
	}
	return answer{text: text, query: query, conversational: true}
}

// acknowledgment is the reply of a turn that only ran actions.
func acknowledgment(outcome dispatch.Outcome) string {
	if outcome.OnlyImages() {
		for _, r := range outcome.Results {
			if r.Task.Family() == intent.FamilyImage && r.Status != "" {
				return r.Status
			}
		}
	}
	return MsgDone
}

func countKind(tasks []intent.Task, k intent.Kind) int {
	n := 0
	for _, t := range tasks {
		if t.Kind == k {
			n++
		}
	}
	return n
}

func countFamily(outcome dispatch.Outcome, f intent.Family) int {
	n := 0
	for _, r := range outcome.Results {
		if !r.Skipped && !r.Refused && r.Task.Family() == f {
			n++
		}
	}
	return n
}

func appendNonEmpty(list []string, s string) []string {
	if s == "" {
		return list
	}
	return append(list, s)
}

func joinOr(parts []string, fallback string) string {
	if len(parts) == 0 {
		return fallback
	}
	return strings.Join(parts, " and ")
}
