package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"todochat/internal/model"
	"todochat/pkg/response"
)

const (
	// HeaderUserID identifies the caller. The gateway in front of this
	// service authenticates the user and forwards the identity here.
	HeaderUserID   = "X-User-ID"
	HeaderUsername = "X-Username"

	scopeKey = "todochat.scope"
)

// Auth requires the forwarded user identity and stores the request scope on
// the gin context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{
			UserID:   userID,
			Username: strings.TrimSpace(c.GetHeader(HeaderUsername)),
		})
		c.Next()
	}
}

// ScopeFromContext returns the scope stored by Auth.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
