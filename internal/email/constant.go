package email

const (
	LogPrefixSend  = "internal.email.Send"
	LogPrefixDraft = "internal.email.Draft"

	MsgUsage            = "Email command needs: to, subject, body. Example: email to a@b.com | subject Hi | body Hello"
	MsgNoRecipient      = "I couldn't detect a valid email address, like john@example.com."
	MsgSMTPUnconfigured = "SMTP is not configured. Please set SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASS, SMTP_FROM in .env"
	MsgDeliveryFailed   = "could not be delivered"

	reasonAuth        = "the mail server rejected the login"
	reasonRejected    = "the mail server rejected the address"
	reasonTimeout     = "the mail server did not answer in time"
	reasonUnreachable = "the mail server could not be reached"
	reasonInvalid     = "the address is not valid"

	signaturePlaceholder = "<YOUR_NAME>"

	draftTemperature = 0.6
	draftMaxTokens   = 450
	draftTone        = "professional"

	promptDraftSystem = `You are an expert email writer. Write clear, professional, well-structured plain-text emails.

Rules:
- Output ONLY the email BODY (no JSON, no markdown).
- Include: greeting, 2-6 short paragraphs, closing, and signature placeholder
  exactly as: Best regards,\n` + signaturePlaceholder + `
- Do not invent personal facts.
- Keep it concise, but complete.`

	promptDraftUser = "Subject: %s\nTone: %s\nContext (optional): %s\n\nWrite the email body."
)
