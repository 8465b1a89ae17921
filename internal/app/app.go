// Package app builds the assistant and its collaborators from configuration.
// Optional collaborators whose settings are missing are left out; their tasks then
// answer with a plain "not available" message.
package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"google.golang.org/api/option"

	"voice-assistant/config"
	"voice-assistant/internal/assistant"
	assistantUC "voice-assistant/internal/assistant/usecase"
	"voice-assistant/internal/automation"
	"voice-assistant/internal/chatlog"
	"voice-assistant/internal/conversation"
	"voice-assistant/internal/dispatch"
	"voice-assistant/internal/display"
	"voice-assistant/internal/email"
	"voice-assistant/internal/imagegen"
	"voice-assistant/internal/intent"
	"voice-assistant/internal/middleware"
	"voice-assistant/internal/reminder"
	"voice-assistant/internal/speech"
	"voice-assistant/pkg/datemath"
	"voice-assistant/pkg/gcalendar"
	"voice-assistant/pkg/huggingface"
	"voice-assistant/pkg/instant"
	"voice-assistant/pkg/launcher"
	"voice-assistant/pkg/llmprovider"
	pkgLog "voice-assistant/pkg/log"
	"voice-assistant/pkg/mailer"
	"voice-assistant/pkg/proxy"
	"voice-assistant/pkg/websearch"
)

// Options are the per-binary choices that do not come from configuration.
type Options struct {
	// Terminate runs after the farewell of an exit turn.
	Terminate dispatch.Terminator
	// Console receives plain text events. Nil disables the console sink.
	Console io.Writer
	// ShowStatus prints status lines on the console.
	ShowStatus bool
	// OpenImages shows generated images on this machine.
	OpenImages bool
	// Sinks receive every display event next to the websocket hub.
	Sinks []display.Sink
}

// App is the wired assistant.
type App struct {
	Assistant  assistant.UseCase
	Presenter  *display.Presenter
	Hub        *display.Hub
	Middleware middleware.Middleware
	HTTPClient *http.Client

	l       pkgLog.Logger
	images  imagegen.UseCase
	speaker *speech.CommandSpeaker
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// New wires every collaborator the configuration enables.
func New(ctx context.Context, cfg *config.Config, l pkgLog.Logger, opts Options) (*App, error) {
	a := &App{l: l, Hub: display.NewHub(l)}

	httpClient, err := proxy.NewHTTPClient(cfg.Proxy.SOCKS5)
	if err != nil {
		return nil, err
	}
	a.HTTPClient = httpClient

	location, err := time.LoadLocation(cfg.Assistant.Timezone)
	if err != nil {
		l.Warnf(ctx, "%s: invalid timezone %q, using local time: %v", LogPrefixNew, cfg.Assistant.Timezone, err)
		location = time.Local
	}

	// LLM providers
	manager := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, httpClient, l)
	classifierLLM := manager.Subset(cfg.LLM.ClassifierProviders)
	chatLLM := manager.Subset(cfg.LLM.ChatProviders)
	l.Infof(ctx, "%s: %d classifier provider(s), %d chat provider(s)", LogPrefixNew, classifierLLM.Len(), chatLLM.Len())

	// Intent
	lex := intent.DefaultLexicon()
	if len(cfg.Intent.Lexicon) > 0 {
		if lex, err = intent.NewLexicon(cfg.Intent.Lexicon); err != nil {
			return nil, fmt.Errorf("intent lexicon: %w", err)
		}
	}
	var classifier intent.Classifier
	if classifierLLM.Len() > 0 {
		classifier = intent.NewClassifier(classifierLLM, lex, l)
	} else {
		l.Warnf(ctx, "%s: no classifier provider, every turn uses simple routing", LogPrefixNew)
	}
	intentUC := intent.New(lex, classifier, l, intent.Options{
		MaxRetries: cfg.Intent.MaxRetries,
		CacheSize:  cfg.Intent.CacheSize,
		CacheTTL:   cfg.Intent.CacheTTL,
	})

	// Conversation log
	history, err := chatlog.NewFileRepository(cfg.Assistant.ChatLogPath, l)
	if err != nil {
		return nil, err
	}
	if err := history.Seed(ctx, cfg.Assistant.Name, cfg.Assistant.Username); err != nil {
		l.Warnf(ctx, "%s: chat log seed: %v", LogPrefixNew, err)
	}

	// Display
	sinks := append([]display.Sink{a.Hub}, opts.Sinks...)
	if opts.Console != nil {
		console := display.NewConsole(opts.Console, cfg.Assistant.Name, cfg.Assistant.Username)
		console.ShowStatus = opts.ShowStatus
		sinks = append(sinks, console)
	}
	var speaker display.Speaker
	if cfg.Speech.Speak && len(cfg.Speech.SpeakCommand) > 0 {
		a.speaker = speech.NewCommandSpeaker(cfg.Speech.SpeakCommand, l)
		speaker = a.speaker
	}
	a.Presenter = display.NewPresenter(speaker, sinks...)

	// Executors
	lch := launcher.New(launcherConfig(cfg.Launcher))
	deps := dispatch.Deps{
		Automation: automation.New(automation.Config{
			DataDir:  cfg.Assistant.DataDir,
			Username: cfg.Assistant.Username,
			Browser:  cfg.Launcher.Browser,
		}, lch, chatLLM, l),
		Email: email.New(email.Config{Username: cfg.Assistant.Username}, newSender(ctx, cfg.SMTP, l), chatLLM, l),
	}
	if a.images = newImages(ctx, cfg, lch, httpClient, l, opts.OpenImages); a.images != nil {
		deps.Images = a.images
	}
	if reminders := newReminders(ctx, cfg, location, l); reminders != nil {
		deps.Reminders = reminders
	}
	dispatcher := dispatch.New(deps, dispatch.Options{}, a.Presenter, opts.Terminate, l)

	// Conversation
	var searcher websearch.ISearcher
	if s := newSearcher(ctx, cfg.Search, httpClient, l); s != nil {
		searcher = s
	}
	live := instant.New().
		WithCurrencyURL(cfg.Instant.CurrencyURL).
		WithGeocodeURL(cfg.Instant.GeocodeURL).
		WithWeatherURL(cfg.Instant.WeatherURL).
		WithHTTPClient(httpClient)
	conv := conversation.New(conversation.Config{
		AssistantName: cfg.Assistant.Name,
		Username:      cfg.Assistant.Username,
		HistoryLimit:  cfg.Assistant.HistoryLimit,
		SearchResults: cfg.Search.MaxResults,
		Location:      location,
	}, chatLLM, history, searcher, live, l)

	a.Assistant = assistantUC.New(l, intentUC, dispatcher, conv, conv, history, a.Presenter)

	perMinute := 0
	if cfg.RateLimit.Enabled {
		perMinute = cfg.RateLimit.PerMinute
	}
	a.Middleware = middleware.New(l, middleware.Config{PerMinute: perMinute})

	if a.images != nil {
		watchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		a.cancel = cancel
		a.wg.Add(1)
		go a.watchImages(watchCtx)
	}
	return a, nil
}

// watchImages shows image completions as notices.
func (a *App) watchImages(ctx context.Context) {
	defer a.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case n := <-a.images.Notifications():
			a.Presenter.Notice(ctx, n.Message)
		}
	}
}

// Close stops background work: image jobs, the notification watcher, the speaker and
// websocket clients.
func (a *App) Close() {
	if a.images != nil {
		a.images.Close()
	}
	if a.cancel != nil {
		a.cancel()
	}
	a.wg.Wait()
	if a.speaker != nil {
		a.speaker.Close()
	}
	a.Hub.Close()
}

func launcherConfig(c config.LauncherConfig) launcher.Config {
	lc := launcher.Config{Editor: c.Editor, Browser: c.Browser, AppAlias: c.AppAlias}
	system := map[launcher.Action][]string{}
	for action, argv := range map[launcher.Action][]string{
		launcher.ActionMute:       c.Mute,
		launcher.ActionUnmute:     c.Unmute,
		launcher.ActionVolumeUp:   c.VolUp,
		launcher.ActionVolumeDown: c.VolDown,
	} {
		if len(argv) > 0 {
			system[action] = argv
		}
	}
	if len(system) > 0 {
		lc.System = system
	}
	return lc
}

func newSender(ctx context.Context, c config.SMTPConfig, l pkgLog.Logger) email.Sender {
	if !c.Configured() {
		l.Infof(ctx, "%s: SMTP not configured, email tasks will say so", LogPrefixNew)
		return nil
	}
	m, err := mailer.New(mailer.Config{
		Host:     c.Host,
		Port:     c.Port,
		Username: c.User,
		Password: c.Password,
		From:     c.From,
		UseTLS:   c.UseTLS,
	})
	if err != nil {
		l.Warnf(ctx, "%s: mailer: %v", LogPrefixNew, err)
		return nil
	}
	return email.NewSMTPSender(m)
}

func newImages(ctx context.Context, cfg *config.Config, opener imagegen.Opener, hc *http.Client, l pkgLog.Logger, openResults bool) imagegen.UseCase {
	if cfg.HuggingFace.APIKey == "" {
		l.Infof(ctx, "%s: HuggingFace API key missing, image generation disabled", LogPrefixNew)
		return nil
	}
	hf, err := huggingface.New(cfg.HuggingFace.APIKey)
	if err != nil {
		l.Warnf(ctx, "%s: huggingface: %v", LogPrefixNew, err)
		return nil
	}
	hf = hf.WithModel(cfg.HuggingFace.Model).WithBaseURL(cfg.HuggingFace.BaseURL).WithHTTPClient(hc)
	if !openResults {
		opener = nil
	}
	return imagegen.New(hf, opener, l, imagegen.Options{
		DataDir:     cfg.Assistant.DataDir,
		ImageCount:  cfg.HuggingFace.ImageCount,
		OpenResults: openResults,
	})
}

func newReminders(ctx context.Context, cfg *config.Config, location *time.Location, l pkgLog.Logger) reminder.UseCase {
	if cfg.Calendar.CredentialsPath == "" {
		l.Infof(ctx, "%s: Google Calendar not configured, reminders disabled", LogPrefixNew)
		return nil
	}
	cal, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.Calendar.CredentialsPath, cfg.Calendar.TokenPath)
	if err != nil {
		l.Warnf(ctx, "%s: Google Calendar not available: %v", LogPrefixNew, err)
		l.Warn(ctx, "→ Run `go run ./scripts/gcal-auth` to generate token.json")
		return nil
	}
	dates, err := datemath.NewParser(location.String())
	if err != nil {
		l.Warnf(ctx, "%s: date parser: %v", LogPrefixNew, err)
		return nil
	}
	return reminder.New(reminder.Config{
		CalendarID: cfg.Calendar.CalendarID,
		Timezone:   location.String(),
	}, cal, dates, l)
}

func newSearcher(ctx context.Context, c config.SearchConfig, hc *http.Client, l pkgLog.Logger) websearch.ISearcher {
	if c.APIKey == "" || c.EngineID == "" {
		l.Infof(ctx, "%s: web search not configured, realtime answers use live data only", LogPrefixNew)
		return nil
	}
	s, err := websearch.New(ctx, c.APIKey, c.EngineID, option.WithHTTPClient(hc))
	if err != nil {
		l.Warnf(ctx, "%s: web search: %v", LogPrefixNew, err)
		return nil
	}
	return s
}
