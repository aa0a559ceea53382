package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	consoleHTTP "admin-console/internal/console/delivery/http"
)

// setupConsoleDomain registers the console pages under /api/v1/console.
// The registry already carries the repositories and use cases of every
// entity; only the HTTP handler is built here.
func (srv HTTPServer) setupConsoleDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := consoleHTTP.New(srv.l, srv.registry, srv.sessions)
	consoleHTTP.RegisterRoutes(api.Group("/console"), h)

	srv.l.Infof(ctx, "Console domain registered with %d entities", len(srv.registry.Entities()))
	return nil
}
