package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	assistantHTTP "personal-assistant/internal/assistant/delivery/http"
	knowledgeHTTP "personal-assistant/internal/knowledge/delivery/http"
	"personal-assistant/internal/middleware"
	"personal-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	middleware       middleware.Middleware
	assistantHandler assistantHTTP.Handler
	knowledgeHandler knowledgeHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware       middleware.Middleware
	AssistantHandler assistantHTTP.Handler
	KnowledgeHandler knowledgeHTTP.Handler // optional
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.Default(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		middleware:       cfg.Middleware,
		assistantHandler: cfg.AssistantHandler,
		knowledgeHandler: cfg.KnowledgeHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.assistantHandler == nil {
		return errors.New("assistant handler is required")
	}
	return nil
}
