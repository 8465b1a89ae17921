package intent

import "strings"

var kindPrefixes = map[Kind]string{
	KindOpen:          "open",
	KindClose:         "close",
	KindPlay:          "play",
	KindSystem:        "system",
	KindContent:       "content",
	KindGoogleSearch:  "google search",
	KindYouTubeSearch: "youtube search",
	KindGenerateImage: "generate image",
	KindSendEmail:     "send email",
	KindReminder:      "reminder",
	KindGeneral:       "general",
	KindRealtime:      "realtime",
	KindExit:          "exit",
}

// String returns the lexicon prefix of k.
func (k Kind) String() string {
	if p, ok := kindPrefixes[k]; ok {
		return p
	}
	return "unknown"
}

// Family returns the dispatch family of k.
func (k Kind) Family() Family {
	switch k {
	case KindOpen, KindClose, KindPlay, KindSystem, KindContent, KindGoogleSearch, KindYouTubeSearch:
		return FamilyAutomation
	case KindGenerateImage:
		return FamilyImage
	case KindSendEmail:
		return FamilyEmail
	case KindReminder:
		return FamilyReminder
	case KindGeneral, KindRealtime:
		return FamilyConversational
	case KindExit:
		return FamilyExit
	default:
		return ""
	}
}

// KindOf returns the kind whose prefix is p.
func KindOf(p string) (Kind, bool) {
	p = strings.ToLower(strings.TrimSpace(p))
	for k, prefix := range kindPrefixes {
		if prefix == p {
			return k, true
		}
	}
	return KindUnknown, false
}

// String renders the task back into its lexicon form.
func (t Task) String() string {
	if t.Argument == "" {
		return t.Kind.String()
	}
	return t.Kind.String() + " " + t.Argument
}

// Family is shorthand for t.Kind.Family().
func (t Task) Family() Family {
	return t.Kind.Family()
}
