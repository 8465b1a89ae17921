package usecase

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	trailingPunctRe = regexp.MustCompile(`[\s.?!]+$`)

	questionWords = map[string]bool{
		"how": true, "what": true, "who": true, "where": true, "when": true, "why": true,
		"which": true, "whose": true, "whom": true, "is": true, "are": true, "do": true,
		"does": true, "did": true, "will": true, "shall": true, "may": true, "might": true,
	}
	questionPhrases = []string{"can you", "could you", "would you"}
)

// QueryModifier capitalises q and ends it with "?" for questions and "." otherwise.
func QueryModifier(q string) string {
	q = strings.TrimSpace(q)
	if q == "" {
		return ""
	}
	question := strings.HasSuffix(q, "?") || isQuestion(strings.ToLower(q))

	q = strings.TrimSpace(trailingPunctRe.ReplaceAllString(q, ""))
	if q == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(q)
	q = string(unicode.ToUpper(r)) + q[size:]
	if question {
		return q + "?"
	}
	return q + "."
}

// AnswerModifier drops blank lines.
func AnswerModifier(a string) string {
	lines := strings.Split(a, "\n")
	kept := lines[:0]
	for _, ln := range lines {
		if strings.TrimSpace(ln) != "" {
			kept = append(kept, ln)
		}
	}
	return strings.Join(kept, "\n")
}

func isQuestion(lower string) bool {
	for _, p := range questionPhrases {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	fields := strings.Fields(lower)
	if len(fields) == 0 {
		return false
	}
	first := strings.TrimSuffix(strings.TrimSuffix(fields[0], "'s"), "’s")
	return questionWords[first]
}
