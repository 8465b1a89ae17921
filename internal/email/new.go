package email

import (
	"voice-assistant/pkg/llmprovider"
	pkgLog "voice-assistant/pkg/log"
)

type usecase struct {
	cfg    Config
	sender Sender
	llm    llmprovider.Generator
	l      pkgLog.Logger
}

// Ensure usecase implements UseCase interface
var _ UseCase = (*usecase)(nil)

// New creates the email use case. A nil sender means SMTP is not configured.
// A nil llm makes drafting use the built in template.
func New(cfg Config, sender Sender, llm llmprovider.Generator, l pkgLog.Logger) UseCase {
	return &usecase{cfg: cfg, sender: sender, llm: llm, l: l}
}
