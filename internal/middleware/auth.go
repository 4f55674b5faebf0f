package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"personal-assistant/internal/model"
	"personal-assistant/pkg/response"
)

const (
	// ScopeKey is the gin context key carrying the request scope.
	ScopeKey = "scope"

	headerUserID = "X-User-ID"
)

// Auth validates the shared bearer key (when configured) and binds the
// caller identity into the request scope. The user ID comes from the
// X-User-ID header; requests without one are rejected since history is
// partitioned per user.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.apiKey != "" {
			token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
			if token != m.apiKey {
				response.Unauthorized(c)
				c.Abort()
				return
			}
		}

		userID := strings.TrimSpace(c.GetHeader(headerUserID))
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(ScopeKey, model.Scope{
			UserID:    userID,
			RequestID: c.GetHeader("X-Request-ID"),
		})
		c.Next()
	}
}

// GetScope extracts the scope bound by Auth. The zero scope is
// returned when the middleware did not run.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(ScopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}
