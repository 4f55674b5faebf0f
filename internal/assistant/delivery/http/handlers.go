package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"personal-assistant/internal/assistant"
	"personal-assistant/internal/middleware"
	"personal-assistant/pkg/response"
)

// ProcessMessage godoc
// @Summary     Process a natural language message
// @Description Resolves the user's intent, executes the matching action (knowledge query, email, meeting, chat) and returns the outcome. The exchange is appended to the user's conversation history.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string     true "Caller identity; history is partitioned per user"
// @Param       body      body   processReq true "User message"
// @Success     200 {object} processResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/process [POST]
func (h *handler) ProcessMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProcessReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := middleware.GetScope(c)

	outcome, err := h.uc.ProcessMessage(ctx, sc, req.toInput())
	if err != nil {
		if errors.Is(err, assistant.ErrEmptyMessage) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "uc.ProcessMessage: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newProcessResp(outcome))
}
