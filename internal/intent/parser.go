package intent

import (
	"regexp"
	"strings"
)

var (
	listMarkerRe = regexp.MustCompile(`^(?:[-*•]|\d+[.)])\s+`)
	codeFenceRe  = regexp.MustCompile("(?m)^```[a-zA-Z]*\\s*$")
)

// Parse turns raw classifier output into an ordered task list.
//
// Multi-line output is split on newlines only and each whole line is one candidate.
// Single-line output is split on commas, where a comma separates tasks only if the text
// after it starts a new lexicon prefix. Segments that match no prefix are dropped.
func (l *Lexicon) Parse(raw string) []Task {
	raw = codeFenceRe.ReplaceAllString(raw, "")
	raw = strings.TrimSpace(strings.ReplaceAll(raw, "\r\n", "\n"))

	if !strings.Contains(raw, "\n") {
		return l.parseLine(raw)
	}

	var tasks []Task
	for _, line := range strings.Split(raw, "\n") {
		if t, ok := l.Match(cleanSegment(line)); ok {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

func (l *Lexicon) parseLine(line string) []Task {
	var (
		tasks   []Task
		current string
		open    bool
	)

	flush := func() {
		if !open {
			return
		}
		if t, ok := l.Match(current); ok {
			tasks = append(tasks, t)
		}
		open = false
		current = ""
	}

	for _, seg := range strings.Split(line, ",") {
		seg = cleanSegment(seg)
		if seg == "" {
			continue
		}
		if _, ok := l.Match(seg); ok {
			flush()
			current, open = seg, true
			continue
		}
		if open {
			current += ", " + seg
		}
	}
	flush()
	return tasks
}

func cleanSegment(seg string) string {
	seg = strings.TrimSpace(seg)
	seg = listMarkerRe.ReplaceAllString(seg, "")
	seg = strings.Trim(seg, "`\"")
	return strings.TrimSpace(seg)
}
