package email

import (
	"context"
	"fmt"
	"strings"

	"voice-assistant/pkg/llmprovider"
)

// draft writes a body for subject. It never fails: without a model, or when the
// model errors, the template body is used.
func (uc *usecase) draft(ctx context.Context, subject, about string) string {
	if uc.llm == nil {
		return uc.sign(templateBody(subject, about))
	}

	extra := about
	if extra == "" {
		extra = "(none)"
	}
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  llmprovider.RoleSystem,
			Parts: []llmprovider.Part{{Text: promptDraftSystem}},
		},
		Messages: []llmprovider.Message{
			llmprovider.TextMessage(llmprovider.RoleUser, fmt.Sprintf(promptDraftUser, subject, draftTone, extra)),
		},
		Temperature: draftTemperature,
		MaxTokens:   draftMaxTokens,
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: model draft failed, using template: %v", LogPrefixDraft, err)
		return uc.sign(templateBody(subject, about))
	}

	body := resp.Text()
	if body == "" {
		return uc.sign(templateBody(subject, about))
	}
	if !strings.Contains(body, signaturePlaceholder) {
		body = strings.TrimRight(body, " \n") + "\n\nBest regards,\n" + signaturePlaceholder
	}
	return uc.sign(body)
}

func (uc *usecase) sign(body string) string {
	if uc.cfg.Username == "" {
		return body
	}
	return strings.ReplaceAll(body, signaturePlaceholder, uc.cfg.Username)
}

func templateBody(subject, about string) string {
	topic := subject
	if topic == "" {
		topic = "the matter below"
	}
	lines := []string{
		"Hello,",
		"",
		fmt.Sprintf("I hope you're doing well. I'm writing regarding %s.", topic),
	}
	if about != "" {
		lines = append(lines, "", about)
	}
	lines = append(lines,
		"",
		"Please let me know the next steps or if you need anything else from me.",
		"",
		"Best regards,",
		signaturePlaceholder,
	)
	return strings.Join(lines, "\n")
}
