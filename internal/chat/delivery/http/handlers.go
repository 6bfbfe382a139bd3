package http

import (
	"github.com/gin-gonic/gin"

	"todochat/internal/chat"
	"todochat/internal/middleware"
	"todochat/pkg/response"
)

// Chat godoc
// @Summary     Interpret a chat message
// @Description Runs a natural-language command through the interpreter and returns the reply plus any task mutation metadata.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Authenticated user ID"
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	res, err := h.uc.Interpret(ctx, sc, req.Message)
	if err != nil {
		if err == chat.ErrEmptyMessage {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "uc.Interpret: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newChatResp(res))
}
