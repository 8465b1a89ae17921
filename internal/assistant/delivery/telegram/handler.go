package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"voice-assistant/internal/assistant"
	"voice-assistant/internal/model"
	pkgResponse "voice-assistant/pkg/response"
	pkgTelegram "voice-assistant/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a background
// goroutine, since a turn can take longer than Telegram waits for a webhook reply.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "%s: failed to parse update: %v", LogPrefixWebhook, err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		// Detach from the request context, which ends with the response.
		bgCtx, cancel := context.WithTimeout(context.Background(), h.timeout)
		defer cancel()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "%s: %v", LogPrefixWebhook, err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) Wait() {
	h.wg.Wait()
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	chatID := msg.Chat.ID

	if h.allowed != nil && !h.allowed[chatID] {
		h.l.Warnf(ctx, "%s: chat %d is not allowed", LogPrefixProcess, chatID)
		return h.bot.SendMessage(ctx, chatID, msgNotAllowed)
	}

	if msg.Voice != nil && msg.Text == "" {
		return h.bot.SendMessage(ctx, chatID, msgVoiceUnsupported)
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	// ---- Built-in commands ----
	switch strings.ToLower(strings.Fields(text)[0]) {
	case commandStart:
		return h.bot.SendMessage(ctx, chatID, msgStart)
	case commandHelp:
		return h.bot.SendMessageWithMode(ctx, chatID, msgHelp, pkgTelegram.ParseModeMarkdown)
	case commandLog:
		if h.allowed == nil {
			return h.bot.SendMessage(ctx, chatID, msgLogRestricted)
		}
		return h.sendLog(ctx, chatID)
	}

	if !h.mw.Allow(fmt.Sprintf("telegram_%d", chatID)) {
		return h.bot.SendMessage(ctx, chatID, msgTooFast)
	}

	if err := h.bot.SendChatAction(ctx, chatID, pkgTelegram.ActionTyping); err != nil {
		h.l.Warnf(ctx, "%s: failed to send typing action: %v", LogPrefixProcess, err)
	}

	sc := scopeOf(msg)
	sc.Trusted = h.allowed != nil
	reply, err := h.uc.Process(ctx, sc, assistant.ProcessInput{Utterance: text})
	if err != nil {
		h.l.Errorf(ctx, "%s: uc.Process: %v", LogPrefixProcess, err)
		if m := errorMessage(err); m != "" {
			// The turn context may already be done.
			return h.bot.SendMessage(context.WithoutCancel(ctx), chatID, m)
		}
		return nil
	}

	return h.bot.SendMessage(ctx, chatID, formatReply(reply))
}

func (h *handler) sendLog(ctx context.Context, chatID int64) error {
	entries, err := h.uc.History(ctx, logEntries)
	if err != nil {
		h.l.Errorf(ctx, "%s: uc.History: %v", LogPrefixProcess, err)
		return h.bot.SendMessage(ctx, chatID, msgFailed)
	}
	if len(entries) == 0 {
		return h.bot.SendMessage(ctx, chatID, msgEmptyLog)
	}

	var b strings.Builder
	for _, e := range entries {
		who := "You"
		if e.Role == model.RoleAssistant {
			who = "Assistant"
		}
		fmt.Fprintf(&b, "%s: %s\n", who, e.Content)
	}
	return h.bot.SendMessage(ctx, chatID, strings.TrimRight(b.String(), "\n"))
}

func scopeOf(msg *pkgTelegram.Message) model.Scope {
	sc := model.Scope{Channel: model.ChannelTelegram, UserID: fmt.Sprintf("telegram_%d", msg.Chat.ID)}
	if msg.From != nil {
		sc.UserID = fmt.Sprintf("telegram_%d", msg.From.ID)
	}
	return sc
}

// formatReply renders notices and status lines above the answer.
func formatReply(r assistant.Reply) string {
	if r.Exit {
		return r.Answer
	}
	lines := make([]string, 0, len(r.Notices)+len(r.StatusLines)+1)
	lines = append(lines, r.Notices...)
	for _, s := range r.StatusLines {
		lines = append(lines, "• "+s)
	}
	if r.Answer != "" {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, r.Answer)
	}
	if len(lines) == 0 {
		return "Done."
	}
	return strings.Join(lines, "\n")
}
