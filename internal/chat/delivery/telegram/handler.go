package telegram

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"todochat/internal/model"
	pkgResponse "todochat/pkg/response"
	pkgTelegram "todochat/pkg/telegram"
)

const welcomeMessage = "👋 Welcome to *todochat*!\n\n" +
	"Talk to me in plain language and I'll manage your todo list:\n" +
	"• \"Add presentation prep #work high priority due tomorrow\"\n" +
	"• \"Show me my pending tasks\"\n" +
	"• \"Complete task 2\"\n\n" +
	"Send /help for the full command list."

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and interprets the message in a
// background goroutine, since Telegram expects an acknowledgement within a
// few seconds and the completion call can take longer.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning the goroutine to avoid data
	// races on the gin context.
	msg := update.Message

	go func() {
		// Detach from the request context, which is cancelled once the
		// acknowledgement is written.
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, "Something went wrong while handling your message. Please try again.")
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" || msg.Chat == nil || msg.From == nil {
		return nil
	}

	if msg.Text == "/start" {
		return h.bot.SendMessageWithMode(msg.Chat.ID, welcomeMessage, "Markdown")
	}

	sc := model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
		Username: msg.From.Username,
	}

	res, err := h.uc.Interpret(ctx, sc, msg.Text)
	if err != nil {
		return err
	}
	return h.bot.SendMessageWithMode(msg.Chat.ID, res.Reply, "Markdown")
}
