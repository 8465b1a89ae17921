package dispatch

import (
	pkgLog "voice-assistant/pkg/log"
)

type usecase struct {
	deps      Deps
	opts      Options
	out       Output
	terminate Terminator
	l         pkgLog.Logger
}

// Ensure usecase implements UseCase interface
var _ UseCase = (*usecase)(nil)

// New creates the task dispatcher. out and terminate may be nil.
func New(deps Deps, opts Options, out Output, terminate Terminator, l pkgLog.Logger) UseCase {
	if opts.MaxParallel <= 0 {
		opts.MaxParallel = DefaultMaxParallel
	}
	if opts.Farewell == "" {
		opts.Farewell = DefaultFarewell
	}
	return &usecase{
		deps:      deps,
		opts:      opts,
		out:       out,
		terminate: terminate,
		l:         l,
	}
}
