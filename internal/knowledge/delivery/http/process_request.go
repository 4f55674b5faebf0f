package http

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"personal-assistant/internal/knowledge"
)

var errInvalidBody = errors.New("request body must be a valid JSON object")

type queryReq struct {
	Query string `json:"query"`
	K     int    `json:"k"`
}

func (r queryReq) toInput() knowledge.QueryInput {
	return knowledge.QueryInput{Query: r.Query, K: r.K}
}

func (h *handler) processQueryReq(c *gin.Context) (queryReq, error) {
	var req queryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return queryReq{}, errInvalidBody
	}
	if strings.TrimSpace(req.Query) == "" {
		return queryReq{}, knowledge.ErrEmptyQuery
	}
	return req, nil
}

type queryResultItem struct {
	Content string  `json:"content"`
	Source  string  `json:"source"`
	Score   float64 `json:"score"`
}

type queryResp struct {
	Results []queryResultItem `json:"results"`
}

func (h *handler) newQueryResp(o knowledge.QueryOutput) queryResp {
	resp := queryResp{Results: make([]queryResultItem, 0, len(o.Results))}
	for _, r := range o.Results {
		resp.Results = append(resp.Results, queryResultItem{
			Content: r.Content,
			Source:  r.Source,
			Score:   r.Score,
		})
	}
	return resp
}

type addTextReq struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

func (r addTextReq) toInput() knowledge.AddTextInput {
	return knowledge.AddTextInput{Text: r.Text, Source: r.Source}
}

func (h *handler) processAddTextReq(c *gin.Context) (addTextReq, error) {
	var req addTextReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return addTextReq{}, errInvalidBody
	}
	if strings.TrimSpace(req.Text) == "" {
		return addTextReq{}, knowledge.ErrEmptyText
	}
	return req, nil
}

type addTextResp struct {
	Status      string `json:"status"`
	ChunksAdded int    `json:"chunks_added"`
}

func (h *handler) newAddTextResp(o knowledge.AddTextOutput) addTextResp {
	return addTextResp{Status: "success", ChunksAdded: o.ChunksAdded}
}
