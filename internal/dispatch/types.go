package dispatch

import (
	"fmt"

	"voice-assistant/internal/automation"
	"voice-assistant/internal/email"
	"voice-assistant/internal/imagegen"
	"voice-assistant/internal/intent"
	"voice-assistant/internal/reminder"
)

// Deps are the task executors. Any of them may be nil, its tasks then fail with a plain message.
type Deps struct {
	Automation automation.UseCase
	Email      email.UseCase
	Images     imagegen.UseCase
	Reminders  reminder.UseCase
}

// Options tunes the dispatcher.
type Options struct {
	// MaxParallel bounds concurrently running tasks. Zero means DefaultMaxParallel.
	MaxParallel int
	Farewell    string
}

// Result is the outcome of one task.
type Result struct {
	Task     intent.Task
	OK       bool
	Status   string
	Deferred bool
	// Skipped is set for tasks not run because the turn ended with exit.
	Skipped bool
	// Refused is set for actions an untrusted sender asked for.
	Refused    bool
	Recipients []email.RecipientResult
}

// Line renders the result as one status line.
func (r Result) Line() string {
	return fmt.Sprintf("%s: %s", r.Task, r.Status)
}

// Outcome is the dispatch result of one turn.
type Outcome struct {
	Results []Result
	Exit    bool
}

// Deferred returns the conversational tasks in submission order.
func (o Outcome) Deferred() []intent.Task {
	var tasks []intent.Task
	for _, r := range o.Results {
		if r.Deferred {
			tasks = append(tasks, r.Task)
		}
	}
	return tasks
}

// Executed counts the tasks that actually ran.
func (o Outcome) Executed() int {
	n := 0
	for _, r := range o.Results {
		if !r.Deferred && !r.Skipped && !r.Refused {
			n++
		}
	}
	return n
}

// Refused counts the actions not run because the sender is not trusted.
func (o Outcome) Refused() int {
	n := 0
	for _, r := range o.Results {
		if r.Refused {
			n++
		}
	}
	return n
}

// StatusLines renders every executed result in submission order.
func (o Outcome) StatusLines() []string {
	lines := make([]string, 0, len(o.Results))
	for _, r := range o.Results {
		if r.Deferred || r.Skipped || r.Status == "" {
			continue
		}
		lines = append(lines, r.Line())
	}
	return lines
}

// OnlyImages reports whether every executed task was an image task.
func (o Outcome) OnlyImages() bool {
	seen := false
	for _, r := range o.Results {
		if r.Deferred || r.Skipped || r.Refused {
			continue
		}
		if r.Task.Family() != intent.FamilyImage {
			return false
		}
		seen = true
	}
	return seen
}
