package email

// Command is a parsed email instruction.
type Command struct {
	To      []string
	Cc      []string
	Bcc     []string
	Subject string
	Body    string
	// About is optional context used for drafting.
	About string
}

// Recipients returns To, Cc and Bcc in order with duplicates removed.
func (c Command) Recipients() []string {
	all := make([]string, 0, len(c.To)+len(c.Cc)+len(c.Bcc))
	all = append(all, c.To...)
	all = append(all, c.Cc...)
	all = append(all, c.Bcc...)
	return dedupe(all)
}

// RecipientResult is the delivery outcome for one address.
type RecipientResult struct {
	Address string
	OK      bool
	// Error is a plain language reason, empty on success.
	Error string
}

// Outcome is the result of one email task.
type Outcome struct {
	OK         bool
	Message    string
	Subject    string
	Body       string
	Drafted    bool
	Recipients []RecipientResult
}

// Config holds email settings.
type Config struct {
	// Username signs drafted emails.
	Username string
}
