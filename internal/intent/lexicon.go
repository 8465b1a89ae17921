package intent

import (
	"fmt"
	"sort"
	"strings"
)

type lexEntry struct {
	prefix string
	kind   Kind
}

// Lexicon is the closed, ordered set of recognized task prefixes.
// Entries are kept longest first so "google search" wins over a shorter overlapping prefix.
// A Lexicon is immutable after construction and safe for concurrent use.
type Lexicon struct {
	entries []lexEntry
}

// DefaultLexicon enables every known prefix.
func DefaultLexicon() *Lexicon {
	lex, _ := NewLexicon(nil)
	return lex
}

// NewLexicon builds a lexicon from the given prefixes. An empty list enables all.
// general is always present because it is the terminal fallback task.
func NewLexicon(prefixes []string) (*Lexicon, error) {
	enabled := make(map[Kind]bool)
	if len(prefixes) == 0 {
		for k := range kindPrefixes {
			enabled[k] = true
		}
	}
	for _, p := range prefixes {
		k, ok := KindOf(p)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPrefix, p)
		}
		enabled[k] = true
	}
	enabled[KindGeneral] = true

	lex := &Lexicon{}
	for k := range enabled {
		lex.entries = append(lex.entries, lexEntry{prefix: kindPrefixes[k], kind: k})
	}
	sort.Slice(lex.entries, func(i, j int) bool {
		a, b := lex.entries[i].prefix, lex.entries[j].prefix
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})
	return lex, nil
}

// Match tests segment against the lexicon, first match wins.
// The prefix must be the whole segment or be followed by a space; case is ignored.
// The argument is returned verbatim apart from surrounding whitespace.
func (l *Lexicon) Match(segment string) (Task, bool) {
	segment = strings.TrimSpace(segment)
	for _, e := range l.entries {
		n := len(e.prefix)
		if len(segment) < n || !strings.EqualFold(segment[:n], e.prefix) {
			continue
		}
		if len(segment) > n && segment[n] != ' ' && segment[n] != '\t' {
			continue
		}
		return Task{Kind: e.kind, Argument: strings.TrimSpace(segment[n:])}, true
	}
	return Task{}, false
}

// Has reports whether k is enabled.
func (l *Lexicon) Has(k Kind) bool {
	for _, e := range l.entries {
		if e.kind == k {
			return true
		}
	}
	return false
}

// Prefixes returns the enabled prefixes in match order.
func (l *Lexicon) Prefixes() []string {
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.prefix
	}
	return out
}
