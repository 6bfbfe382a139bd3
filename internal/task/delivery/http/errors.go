package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"todochat/internal/task"
	"todochat/pkg/response"
)

// respondError translates domain errors into the HTTP error envelope.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c, err)
	case errors.Is(err, task.ErrEmptyTitle), errors.Is(err, task.ErrTooManyTags):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
