package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"voice-assistant/config"
	"voice-assistant/internal/app"
	"voice-assistant/internal/assistant"
	"voice-assistant/internal/display"
	"voice-assistant/internal/ipc"
	"voice-assistant/internal/model"
	"voice-assistant/internal/speech"
	"voice-assistant/pkg/log"
)

const (
	modeText  = "text"
	modeVoice = "voice"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to config.yaml")
	mode := pflag.StringP("mode", "m", "", "input mode: text or voice (default from config)")
	once := pflag.String("once", "", "process one utterance, print the answer and exit")
	pushToTalk := pflag.Bool("push-to-talk", false, "listen only after `assistant-ctl trigger`")
	noIPC := pflag.Bool("no-ipc", false, "do not open the control socket")
	pflag.Parse()

	if err := run(*configPath, *mode, *once, *pushToTalk, !*noIPC); err != nil {
		fmt.Fprintln(os.Stderr, "assistant:", err)
		os.Exit(1)
	}
}

func run(configPath, mode, once string, pushToTalk, withIPC bool) error {
	// 1. Configuration
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if mode == "" {
		mode = cfg.Speech.Mode
	}
	if mode != modeText && mode != modeVoice {
		return fmt.Errorf("unknown mode %q", mode)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Assistant. An exit turn ends the session right after the farewell.
	status := &statusTracker{last: display.StatusIdle}
	assistantApp, err := app.New(ctx, cfg, logger, app.Options{
		Terminate:  func() { stop() },
		Console:    os.Stdout,
		ShowStatus: mode == modeVoice,
		OpenImages: true,
		Sinks:      []display.Sink{status},
	})
	if err != nil {
		return err
	}
	defer assistantApp.Close()

	if once != "" {
		reply, err := assistantApp.Assistant.Process(ctx, model.Scope{Channel: model.ChannelCLI, UserID: cfg.Assistant.Username},
			assistant.ProcessInput{Utterance: once})
		if err != nil {
			return err
		}
		for _, line := range reply.StatusLines {
			logger.Info(ctx, line)
		}
		return nil
	}

	// 4. Listener
	var (
		listener speech.Listener
		channel  = model.ChannelCLI
	)
	if mode == modeVoice {
		listener = speech.NewCommandListener(cfg.Speech.ListenCommand, cfg.Speech.MaxListen)
		channel = model.ChannelVoice
	} else {
		listener = speech.NewLineListener(os.Stdin)
	}
	s := newSession(logger, assistantApp.Assistant, assistantApp.Presenter, listener,
		model.Scope{Channel: channel, UserID: cfg.Assistant.Username}, pushToTalk)
	s.status = status

	// 5. Control socket
	if withIPC {
		srv := ipc.NewServer(cfg.IPC.SocketPath, s.handleControl)
		if err := srv.Start(ctx); err != nil {
			logger.Warnf(ctx, "Control socket disabled: %v", err)
		} else {
			logger.Infof(ctx, "Control socket at %s", cfg.IPC.SocketPath)
			defer srv.Wait()
			defer stop()
		}
	}

	// 6. Run. A typed line read blocks on stdin, so a signal does not wait for it.
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	select {
	case err = <-done:
	case <-ctx.Done():
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info(ctx, "Goodbye")
	return nil
}
