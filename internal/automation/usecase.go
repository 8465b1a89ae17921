package automation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"voice-assistant/pkg/launcher"
	"voice-assistant/pkg/llmprovider"
)

func (uc *usecase) OpenApp(ctx context.Context, name string) Result {
	name = strings.TrimSpace(name)
	switch normalizeName(name) {
	case "", "it", "file":
		return failure(msgNothingToOpen)
	}

	if site, found := websiteFor(name); found {
		if err := uc.launcher.OpenURL(ctx, site); err != nil {
			uc.l.Warnf(ctx, "%s: open %s: %v", LogPrefixOpen, site, err)
			return failure(msgAppUnavailable, name)
		}
		return success("Opened %s.", name)
	}

	err := uc.launcher.StartApp(ctx, name)
	if err == nil {
		return success("Opened %s.", name)
	}
	uc.l.Infof(ctx, "%s: %s not installed: %v", LogPrefixOpen, name, err)

	// Best effort: the service may exist on the web under the same name.
	if !errors.Is(err, launcher.ErrAppNotFound) {
		return failure(msgAppUnavailable, name)
	}
	if werr := uc.launcher.OpenURL(ctx, guessSite(name)); werr != nil {
		uc.l.Debugf(ctx, "%s: web fallback for %s failed: %v", LogPrefixOpen, name, werr)
	}
	return failure(msgAppUnavailable, name)
}

func (uc *usecase) CloseApp(ctx context.Context, name string) Result {
	name = strings.TrimSpace(name)
	if name == "" {
		return failure("Nothing to close.")
	}
	if isBrowser(name, uc.cfg.Browser) {
		return success("Left %s open.", name)
	}
	if err := uc.launcher.StopApp(ctx, name); err != nil {
		uc.l.Warnf(ctx, "%s: %s: %v", LogPrefixClose, name, err)
		return failure("Couldn't close %s.", name)
	}
	return success("Closed %s.", name)
}

func (uc *usecase) Play(ctx context.Context, query string) Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return failure("Tell me what to play.")
	}
	if err := uc.launcher.OpenURL(ctx, searchURL(YouTubeSearchURL, query)); err != nil {
		uc.l.Warnf(ctx, "%s: %v", LogPrefixPlay, err)
		return failure("Couldn't play %s.", query)
	}
	return success("Playing %s on YouTube.", query)
}

func (uc *usecase) System(ctx context.Context, command string) Result {
	action := launcher.Action(normalizeName(command))
	switch action {
	case launcher.ActionMute, launcher.ActionUnmute, launcher.ActionVolumeUp, launcher.ActionVolumeDown:
	default:
		return failure("Unknown system command '%s'.", strings.TrimSpace(command))
	}
	if err := uc.launcher.System(ctx, action); err != nil {
		uc.l.Warnf(ctx, "%s: %s: %v", LogPrefixSystem, action, err)
		return failure("Couldn't %s.", action)
	}
	return success("System %s done.", action)
}

func (uc *usecase) GoogleSearch(ctx context.Context, topic string) Result {
	return uc.search(ctx, "Google", GoogleSearchURL, topic)
}

func (uc *usecase) YouTubeSearch(ctx context.Context, topic string) Result {
	return uc.search(ctx, "YouTube", YouTubeSearchURL, topic)
}

func (uc *usecase) search(ctx context.Context, site, base, topic string) Result {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return failure("Tell me what to search on %s.", site)
	}
	if err := uc.launcher.OpenURL(ctx, searchURL(base, topic)); err != nil {
		uc.l.Warnf(ctx, "%s: %s: %v", LogPrefixSearch, site, err)
		return failure("Couldn't search %s for %s.", site, topic)
	}
	return success("Searched %s for %s.", site, topic)
}

func (uc *usecase) WriteContent(ctx context.Context, topic string) Result {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return failure("Tell me what to write about.")
	}
	if uc.llm == nil {
		return failure(msgContentFailed, topic)
	}

	text, err := uc.draft(ctx, topic)
	if err != nil {
		uc.l.Errorf(ctx, "%s: draft %q: %v", LogPrefixContent, topic, err)
		return failure(msgContentFailed, topic)
	}

	path := filepath.Join(uc.cfg.DataDir, contentFileName(topic))
	if err := os.MkdirAll(uc.cfg.DataDir, 0o755); err != nil {
		uc.l.Errorf(ctx, "%s: %v", LogPrefixContent, err)
		return failure(msgContentFailed, topic)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		uc.l.Errorf(ctx, "%s: write %s: %v", LogPrefixContent, path, err)
		return failure(msgContentFailed, topic)
	}

	if err := uc.launcher.OpenFile(ctx, path); err != nil {
		uc.l.Warnf(ctx, "%s: open %s: %v", LogPrefixContent, path, err)
		return success("Content saved to %s.", path)
	}
	return success("Content about %s written to %s.", topic, path)
}

func (uc *usecase) draft(ctx context.Context, topic string) (string, error) {
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  llmprovider.RoleSystem,
			Parts: []llmprovider.Part{{Text: fmt.Sprintf(promptContentWriter, uc.cfg.Username)}},
		},
		Messages:    []llmprovider.Message{llmprovider.TextMessage(llmprovider.RoleUser, topic)},
		Temperature: contentTemperature,
		MaxTokens:   contentMaxTokens,
	})
	if err != nil {
		return "", err
	}
	text := strings.ReplaceAll(resp.Text(), "</s>", "")
	if text == "" {
		return "", errors.New("empty content")
	}
	return text, nil
}
