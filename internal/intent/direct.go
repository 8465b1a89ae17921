package intent

import (
	"regexp"
	"strings"
)

var (
	exitWords = map[string]bool{"exit": true, "quit": true, "bye": true, "goodbye": true}

	imageKeywordRe = regexp.MustCompile(`(?i)\b(?:image|photo|picture|wallpaper)s?\b`)
	imageFillerRe  = regexp.MustCompile(`(?i)\b(?:please|can you|could you|generate|create|make|draw|show|give|me|an?|the|some|images?|photos?|pictures?|wallpapers?|of|for)\b`)
	spacesRe       = regexp.MustCompile(`\s+`)
)

// Direct recognizes utterances that need no classifier: goodbyes, explicit email and
// image commands, and single automation commands. ok is false when the classifier
// (or the fallback router) should decide.
func (l *Lexicon) Direct(utterance string) (tasks []Task, ok bool) {
	u := strings.TrimSpace(utterance)
	if u == "" {
		return nil, false
	}
	lower := strings.ToLower(u)

	if isExitWord(lower) {
		return []Task{{Kind: KindExit}}, true
	}

	if t, ok := l.emailTask(u); ok {
		return []Task{t}, true
	}

	if l.Has(KindGenerateImage) {
		if t, ok := l.Match(u); ok && t.Kind == KindGenerateImage {
			return []Task{t}, true
		}
		if imageKeywordRe.MatchString(u) && !strings.Contains(lower, " and ") {
			return []Task{{Kind: KindGenerateImage, Argument: ImagePrompt(u)}}, true
		}
	}

	if !strings.Contains(lower, " and ") && !strings.Contains(u, ",") {
		if t, ok := l.Match(u); ok && t.Family() == FamilyAutomation && t.Argument != "" {
			return []Task{t}, true
		}
	}

	return nil, false
}

// ImagePrompt strips request filler ("generate an image of ...") from text.
func ImagePrompt(text string) string {
	cleaned := imageFillerRe.ReplaceAllString(text, " ")
	cleaned = strings.Trim(spacesRe.ReplaceAllString(cleaned, " "), " .?!")
	if cleaned == "" {
		return strings.TrimSpace(text)
	}
	return cleaned
}

func (l *Lexicon) emailTask(u string) (Task, bool) {
	if !l.Has(KindSendEmail) {
		return Task{}, false
	}
	if t, ok := l.Match(u); ok && t.Kind == KindSendEmail {
		return t, true
	}
	lower := strings.ToLower(u)
	if strings.HasPrefix(lower, "email ") {
		return Task{Kind: KindSendEmail, Argument: strings.TrimSpace(u[len("email "):])}, true
	}
	return Task{}, false
}

func isExitWord(lower string) bool {
	return exitWords[strings.Trim(lower, " .!?")]
}
