package automation

import (
	"voice-assistant/pkg/launcher"
	"voice-assistant/pkg/llmprovider"
	pkgLog "voice-assistant/pkg/log"
)

type usecase struct {
	cfg      Config
	launcher launcher.Launcher
	llm      llmprovider.Generator
	l        pkgLog.Logger
}

// Ensure usecase implements UseCase interface
var _ UseCase = (*usecase)(nil)

// New creates the automation use case. llm may be nil, content writing then reports a failure.
func New(cfg Config, lch launcher.Launcher, llm llmprovider.Generator, l pkgLog.Logger) UseCase {
	if cfg.DataDir == "" {
		cfg.DataDir = "Data"
	}
	return &usecase{
		cfg:      cfg,
		launcher: lch,
		llm:      llm,
		l:        l,
	}
}
