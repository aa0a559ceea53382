package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"admin-console/internal/console"
	consoleHTTP "admin-console/internal/console/delivery/http"
	"admin-console/internal/middleware"
	"admin-console/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	cors        middleware.CORSConfig

	// Console domain
	registry *console.Registry
	sessions consoleHTTP.SessionConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger         log.Logger
	Port           int
	Mode           string
	Environment    string
	AllowedOrigins []string

	// Console domain
	Registry *console.Registry
	Sessions consoleHTTP.SessionConfig
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		cors: middleware.CORSConfig{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowHeaders:   []string{consoleHTTP.SessionHeader},
		},
		registry: cfg.Registry,
		sessions: cfg.Sessions,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
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
	if srv.registry == nil {
		return errors.New("console registry is required")
	}
	return nil
}
