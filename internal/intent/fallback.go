package intent

import (
	"regexp"
	"strings"
)

var fallbackSplitRe = regexp.MustCompile(`(?i)\b(?:and then|then|and)\b|[;,]+`)

// Route decides tasks without the classifier. The utterance is split on conjunctions and
// punctuation; each fragment is matched by prefix or keyword, and the fragments nothing
// claims are joined into one general task placed last.
func (l *Lexicon) Route(utterance string) Decision {
	d := Decision{Fallback: true, Notice: NoticeFallback}

	u := strings.TrimSpace(utterance)
	if u == "" {
		return d
	}

	var residual []string
	for _, frag := range fallbackSplitRe.Split(u, -1) {
		frag = strings.TrimSpace(frag)
		if frag == "" {
			continue
		}
		if t, ok := l.routeFragment(frag); ok {
			d.Tasks = append(d.Tasks, t)
			continue
		}
		residual = append(residual, frag)
	}

	if len(residual) > 0 {
		d.Tasks = append(d.Tasks, Task{Kind: KindGeneral, Argument: strings.Join(residual, " and ")})
	}
	return d
}

func (l *Lexicon) routeFragment(frag string) (Task, bool) {
	lower := strings.ToLower(frag)

	if isExitWord(lower) {
		return Task{Kind: KindExit}, true
	}

	// send email is checked before the looser "email" keyword rule.
	if t, ok := l.emailTask(frag); ok {
		return t, true
	}
	if l.Has(KindSendEmail) && strings.Contains(lower, "email") {
		return Task{Kind: KindSendEmail, Argument: frag}, true
	}

	if l.Has(KindGenerateImage) {
		if t, ok := l.Match(frag); ok && t.Kind == KindGenerateImage {
			return t, true
		}
		if imageKeywordRe.MatchString(frag) {
			return Task{Kind: KindGenerateImage, Argument: ImagePrompt(frag)}, true
		}
	}

	if t, ok := l.Match(frag); ok {
		switch t.Family() {
		case FamilyAutomation, FamilyReminder:
			if t.Argument != "" {
				return t, true
			}
		case FamilyConversational:
			return t, t.Argument != ""
		case FamilyExit:
			return t, true
		}
	}
	return Task{}, false
}
