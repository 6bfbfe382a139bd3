package http

import (
	"github.com/gin-gonic/gin"

	"todochat/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. All routes
// require the forwarded user identity.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.Auth(), h.Create)
		tasks.GET("", mw.Auth(), h.List)
		tasks.PUT("/:id", mw.Auth(), h.Update)
		tasks.DELETE("/:id", mw.Auth(), h.Delete)
		tasks.POST("/:id/toggle", mw.Auth(), h.ToggleCompletion)
	}
}
