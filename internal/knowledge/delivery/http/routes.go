package http

import (
	"github.com/gin-gonic/gin"

	"personal-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	knowledge := rg.Group("/knowledge")
	{
		knowledge.POST("/query", mw.Auth(), mw.RateLimit(), h.Query)
		knowledge.POST("/documents", mw.Auth(), mw.RateLimit(), h.AddText)
	}
}
