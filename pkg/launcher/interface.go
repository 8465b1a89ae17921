package launcher

import (
	"context"
	"os/exec"
	"runtime"

	"github.com/pkg/browser"
)

// Launcher starts and stops desktop programs.
type Launcher interface {
	OpenURL(ctx context.Context, url string) error
	OpenFile(ctx context.Context, path string) error
	StartApp(ctx context.Context, name string) error
	StopApp(ctx context.Context, name string) error
	System(ctx context.Context, action Action) error
}

// New creates a Launcher for the current platform.
func New(cfg Config) Launcher {
	goos := cfg.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	system := defaultSystemCommands(goos)
	for action, argv := range cfg.System {
		if len(argv) > 0 {
			system[action] = argv
		}
	}
	cfg.System = system

	return &launcherImpl{
		cfg:      cfg,
		goos:     goos,
		start:    startDetached,
		run:      runCommand,
		lookPath: exec.LookPath,
		openURL:  browser.OpenURL,
		openFile: browser.OpenFile,
	}
}
