package http

import (
	"github.com/gin-gonic/gin"

	"personal-assistant/internal/knowledge"
	"personal-assistant/pkg/log"
)

// Handler is the public interface for the knowledge HTTP delivery layer.
type Handler interface {
	Query(c *gin.Context)
	AddText(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc knowledge.UseCase
}

// New creates a new HTTP handler for the knowledge domain.
func New(l log.Logger, uc knowledge.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
