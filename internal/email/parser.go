package email

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	spokenAt         = regexp.MustCompile(`\s+at\s+`)
	spokenDot        = regexp.MustCompile(`\s+dot\s+`)
	spokenUnderscore = regexp.MustCompile(`\s+underscore\s+`)
	spacedAt         = regexp.MustCompile(`\s*@\s*`)
	spacedDot        = regexp.MustCompile(`\s*\.\s*`)
	trailingPunct    = regexp.MustCompile(`[\s.,;:!?]+$`)

	subjectRe   = regexp.MustCompile(`(?i)\bsubject\b\s+(.*)`)
	subjectStop = regexp.MustCompile(`(?i)\b(body|about)\b`)
	aboutRe     = regexp.MustCompile(`(?i)\babout\b\s+(.*)$`)
	bodyRe      = regexp.MustCompile(`(?i)\bbody\b\s+(.*)$`)
	clauseStart = regexp.MustCompile(`(?i)\b(subject|body|about)\b`)
)

var bracketReplacer = strings.NewReplacer(
	"(at)", "@", "[at]", "@", "{at}", "@",
	"(dot)", ".", "[dot]", ".", "{dot}", ".",
)

// normalizeSpoken rewrites speech-to-text renderings such as "john at example dot com".
func normalizeSpoken(text string) string {
	t := strings.ToLower(strings.TrimSpace(text))
	t = spokenAt.ReplaceAllString(t, "@")
	t = spokenDot.ReplaceAllString(t, ".")
	t = spokenUnderscore.ReplaceAllString(t, "_")
	t = bracketReplacer.Replace(t)
	t = spacedAt.ReplaceAllString(t, "@")
	t = spacedDot.ReplaceAllString(t, ".")
	return trailingPunct.ReplaceAllString(t, "")
}

// ExtractEmails returns every address in text, first occurrence order, without duplicates.
func ExtractEmails(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return dedupe(emailRegex.FindAllString(normalizeSpoken(text), -1))
}

// CleanSubject removes trailing punctuation added by speech recognition.
func CleanSubject(subject string) string {
	return strings.TrimSpace(trailingPunct.ReplaceAllString(strings.TrimSpace(subject), ""))
}

// ExtractSubject reads "... subject <X> body <Y>" style commands.
func ExtractSubject(text string) string {
	m := subjectRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	subj := m[1]
	if loc := subjectStop.FindStringIndex(subj); loc != nil {
		subj = subj[:loc[0]]
	}
	return CleanSubject(subj)
}

// ExtractAbout reads the "about <X>" clause.
func ExtractAbout(text string) string {
	if m := aboutRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// ExtractBody reads the "body <X>" clause.
func ExtractBody(text string) string {
	if m := bodyRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// StripPrefix removes a leading "send email" or "email".
func StripPrefix(instruction string) string {
	s := strings.TrimSpace(instruction)
	lower := strings.ToLower(s)
	for _, p := range []string{"send email", "email"} {
		if lower == p {
			return ""
		}
		if strings.HasPrefix(lower, p+" ") {
			return strings.TrimSpace(s[len(p)+1:])
		}
	}
	return s
}

// ParseCommand understands the pipe form
// "to a@b.com | subject Hi | body Hello | cc c@d.com | bcc e@f.com"
// and free form instructions such as "to john at example dot com about the launch".
// A missing body is not an error, the caller drafts one.
func ParseCommand(instruction string) (Command, error) {
	raw := StripPrefix(instruction)
	if strings.Contains(raw, "|") {
		return parsePiped(raw)
	}
	return parseFree(raw)
}

func parsePiped(raw string) (Command, error) {
	var cmd Command
	for _, part := range strings.Split(raw, "|") {
		part = strings.TrimSpace(part)
		lower := strings.ToLower(part)
		switch {
		case strings.HasPrefix(lower, "to "):
			cmd.To = ExtractEmails(part[3:])
		case strings.HasPrefix(lower, "subject "):
			cmd.Subject = CleanSubject(part[8:])
		case strings.HasPrefix(lower, "body "):
			cmd.Body = strings.TrimSpace(part[5:])
		case strings.HasPrefix(lower, "cc "):
			cmd.Cc = ExtractEmails(part[3:])
		case strings.HasPrefix(lower, "bcc "):
			cmd.Bcc = ExtractEmails(part[4:])
		case strings.HasPrefix(lower, "about "):
			cmd.About = strings.TrimSpace(part[6:])
		}
	}
	if len(cmd.To) == 0 || cmd.Subject == "" {
		return cmd, ErrMissingFields
	}
	return cmd, nil
}

func parseFree(raw string) (Command, error) {
	cmd := Command{
		Subject: ExtractSubject(raw),
		About:   ExtractAbout(raw),
		Body:    ExtractBody(raw),
	}

	// Addresses are looked up before the subject/body clauses so words there
	// are not mistaken for spoken addresses.
	head := raw
	if loc := clauseStart.FindStringIndex(head); loc != nil {
		head = head[:loc[0]]
	}
	cmd.To = ExtractEmails(head)
	if len(cmd.To) == 0 {
		cmd.To = ExtractEmails(raw)
	}

	if cmd.Subject == "" && cmd.About != "" {
		cmd.Subject = subjectFromAbout(cmd.About)
	}

	if len(cmd.To) == 0 {
		return cmd, ErrNoRecipient
	}
	if cmd.Subject == "" {
		return cmd, ErrMissingFields
	}
	return cmd, nil
}

// subjectFromAbout uses the first words of the about clause, capitalised.
func subjectFromAbout(about string) string {
	words := strings.Fields(CleanSubject(about))
	if len(words) > 8 {
		words = words[:8]
	}
	s := strings.Join(words, " ")
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
