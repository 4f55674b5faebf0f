package http

import (
	"github.com/gin-gonic/gin"

	"personal-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require auth; rate limiting runs after identity binding.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	assistant := rg.Group("/assistant")
	{
		assistant.POST("/process", mw.Auth(), mw.RateLimit(), h.ProcessMessage)
	}
}
