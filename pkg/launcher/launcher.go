package launcher

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

func (l *launcherImpl) OpenURL(ctx context.Context, url string) error {
	if l.cfg.Browser != "" {
		return l.start([]string{l.cfg.Browser, url})
	}
	if err := l.openURL(url); err != nil {
		return fmt.Errorf("open url %s: %w", url, err)
	}
	return nil
}

func (l *launcherImpl) OpenFile(ctx context.Context, path string) error {
	if l.cfg.Editor != "" {
		return l.start([]string{l.cfg.Editor, path})
	}
	if err := l.openFile(path); err != nil {
		return fmt.Errorf("open file %s: %w", path, err)
	}
	return nil
}

func (l *launcherImpl) StartApp(ctx context.Context, name string) error {
	exe := l.resolve(name)
	if exe == "" {
		return ErrAppNotFound
	}

	switch l.goos {
	case "darwin":
		if err := l.run([]string{"open", "-a", exe}); err != nil {
			return fmt.Errorf("%w: %s", ErrAppNotFound, name)
		}
		return nil
	case "windows":
		if _, err := l.lookPath(exe); err != nil {
			return fmt.Errorf("%w: %s", ErrAppNotFound, name)
		}
		return l.start([]string{"cmd", "/c", "start", "", exe})
	default:
		path, err := l.lookPath(exe)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrAppNotFound, name)
		}
		return l.start([]string{path})
	}
}

func (l *launcherImpl) StopApp(ctx context.Context, name string) error {
	exe := l.resolve(name)
	if exe == "" {
		return ErrAppNotFound
	}

	var argv []string
	switch l.goos {
	case "windows":
		if !strings.HasSuffix(strings.ToLower(exe), ".exe") {
			exe += ".exe"
		}
		argv = []string{"taskkill", "/IM", exe, "/F"}
	default:
		argv = []string{"pkill", "-x", exe}
	}
	if err := l.run(argv); err != nil {
		return fmt.Errorf("%w: %s", ErrNotRunning, name)
	}
	return nil
}

func (l *launcherImpl) System(ctx context.Context, action Action) error {
	argv, ok := l.cfg.System[action]
	if !ok || len(argv) == 0 {
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	return l.run(argv)
}

// resolve maps a spoken name to an executable name through the alias table.
func (l *launcherImpl) resolve(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if alias, ok := l.cfg.AppAlias[name]; ok {
		return alias
	}
	return strings.ReplaceAll(name, " ", "-")
}

// startDetached starts argv without waiting for it to exit.
func startDetached(argv []string) error {
	if len(argv) == 0 {
		return ErrEmptyCommand
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start command %s: %w", argv[0], err)
	}
	return cmd.Process.Release()
}

// runCommand executes argv and waits, bounded by CommandTimeout.
func runCommand(argv []string) error {
	if len(argv) == 0 {
		return ErrEmptyCommand
	}
	ctx, cancel := context.WithTimeout(context.Background(), CommandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("run %s: %w: %s", argv[0], err, strings.TrimSpace(string(out)))
	}
	return nil
}
