package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	assistantHTTP "personal-assistant/internal/assistant/delivery/http"
	knowledgeHTTP "personal-assistant/internal/knowledge/delivery/http"
	"personal-assistant/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	v1 := srv.gin.Group("/api/v1")

	assistantHTTP.RegisterRoutes(v1, srv.assistantHandler, srv.middleware)
	srv.l.Infof(ctx, "Assistant route registered at POST /api/v1/assistant/process")

	if srv.knowledgeHandler != nil {
		knowledgeHTTP.RegisterRoutes(v1, srv.knowledgeHandler, srv.middleware)
		srv.l.Infof(ctx, "Knowledge routes registered under /api/v1/knowledge")
	} else {
		srv.l.Infof(ctx, "Knowledge handler not configured, skipping knowledge routes")
	}
}
