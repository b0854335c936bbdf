package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"health-tracker/internal/health"
	"health-tracker/internal/model"
	pkgLog "health-tracker/pkg/log"
	pkgResponse "health-tracker/pkg/response"
	pkgTelegram "health-tracker/pkg/telegram"
)

const (
	msgWelcome = "👋 Welcome to *Health Tracker*!\n\n" +
		"Just tell me what you did or ate and I'll log it:\n" +
		"• 🏃 _I ran 3 miles in 30 minutes_\n" +
		"• 🥗 _Salad for lunch_\n\n" +
		"Send /status for your weekly report. You'll also get one every Monday."
	msgHelp = "*How to use:*\n\n" +
		"Describe an exercise session (type, duration, distance) or a meal in plain words.\n" +
		"`/status` shows your last 7 days.\n" +
		"`/help` shows this message."
)

type handler struct {
	l   pkgLog.Logger
	uc  health.UseCase
	bot *pkgTelegram.Bot
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine; a model call plus a spreadsheet write can exceed
// Telegram's webhook deadline.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (edits, channel posts, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	go func() {
		// Detach from the request context, which is cancelled after the response
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, errorMessage(err))
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	sc := scopeFor(msg)

	switch command(text) {
	case "/start":
		if _, err := h.uc.RegisterUser(ctx, sc); err != nil {
			h.l.Warnf(ctx, "telegram handler: RegisterUser %s: %v", sc.UserID, err)
		}
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, msgWelcome, pkgTelegram.ParseModeMarkdown)
	case "/help":
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, msgHelp, pkgTelegram.ParseModeMarkdown)
	case "/status":
		report, err := h.uc.StatusReport(ctx, sc)
		if err != nil {
			return fmt.Errorf("status report: %w", err)
		}
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, report, pkgTelegram.ParseModeMarkdown)
	}

	output, err := h.uc.HandleMessage(ctx, sc, health.MessageInput{Text: text})
	if err != nil {
		return fmt.Errorf("handle message: %w", err)
	}

	return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, output.Response, pkgTelegram.ParseModeMarkdown)
}

// scopeFor builds the scope from the Telegram sender, falling back to the chat
// for anonymous channel posts.
func scopeFor(msg *pkgTelegram.Message) model.Scope {
	sc := model.Scope{ChatID: msg.Chat.ID}
	if msg.From != nil {
		sc.UserID = fmt.Sprintf("telegram_%d", msg.From.ID)
		sc.Username = msg.From.Username
	} else {
		sc.UserID = fmt.Sprintf("telegram_%d", msg.Chat.ID)
	}
	return sc
}

// command returns the bot command without arguments or the @botname suffix.
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd := strings.Fields(text)[0]
	if i := strings.IndexByte(cmd, '@'); i >= 0 {
		cmd = cmd[:i]
	}
	return strings.ToLower(cmd)
}
