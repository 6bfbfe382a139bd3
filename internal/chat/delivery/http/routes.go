package http

import (
	"github.com/gin-gonic/gin"

	"todochat/internal/middleware"
)

// RegisterRoutes maps the chat endpoint. Auth runs before the rate limiter
// so throttling keys on the user rather than the client IP.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.Auth(), mw.RateLimit(), h.Chat)
}
