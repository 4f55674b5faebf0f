package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"personal-assistant/internal/assistant"
)

type processReq struct {
	Message string `json:"message"`
}

func (r processReq) toInput() assistant.ProcessInput {
	return assistant.ProcessInput{Message: r.Message}
}

func (h *handler) processProcessReq(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return processReq{}, errInvalidBody
	}
	if strings.TrimSpace(req.Message) == "" {
		return processReq{}, assistant.ErrEmptyMessage
	}
	return req, nil
}

type processResp struct {
	Response     string `json:"response,omitempty"`
	Error        string `json:"error,omitempty"`
	Details      string `json:"details,omitempty"`
	HistoryError string `json:"history_error,omitempty"`
}

func (h *handler) newProcessResp(o assistant.Outcome) processResp {
	return processResp{
		Response:     o.Response,
		Error:        o.Error,
		Details:      o.Details,
		HistoryError: o.HistoryError,
	}
}
