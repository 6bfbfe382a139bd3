package telegram

import (
	"github.com/gin-gonic/gin"

	"todochat/internal/chat"
	pkgLog "todochat/pkg/log"
	pkgTelegram "todochat/pkg/telegram"
)

// Handler is the public interface for the Telegram delivery layer.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l   pkgLog.Logger
	uc  chat.UseCase
	bot *pkgTelegram.Bot
}

// New creates a new Telegram webhook handler for the chat domain.
func New(l pkgLog.Logger, uc chat.UseCase, bot *pkgTelegram.Bot) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
	}
}
