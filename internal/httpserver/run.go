package httpserver

import (
	"context"
	"fmt"
)

// Run maps all handlers and starts serving. Blocks until the listener
// fails.
func (srv HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}

	srv.l.Infof(context.Background(), "HTTP server listening on port %d (mode=%s, env=%s)",
		srv.port, srv.mode, srv.environment)

	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
