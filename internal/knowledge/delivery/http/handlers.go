package http

import (
	"github.com/gin-gonic/gin"

	"personal-assistant/pkg/response"
)

// Query godoc
// @Summary     Query the knowledge base
// @Description Runs a semantic search and returns the closest documents with scores.
// @Tags        Knowledge
// @Accept      json
// @Produce     json
// @Param       body body queryReq true "Search query"
// @Success     200 {object} queryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/knowledge/query [POST]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Query(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Query: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newQueryResp(output))
}

// AddText godoc
// @Summary     Add text to the knowledge base
// @Description Splits the text into chunks, embeds them and indexes them for semantic search.
// @Tags        Knowledge
// @Accept      json
// @Produce     json
// @Param       body body addTextReq true "Text and optional source label"
// @Success     200 {object} addTextResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/knowledge/documents [POST]
func (h *handler) AddText(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddTextReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AddText(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddText: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newAddTextResp(output))
}
