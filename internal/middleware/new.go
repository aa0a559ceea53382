package middleware

import (
	"admin-console/pkg/log"
)

// CORSConfig lists the browser origins and extra request headers the API
// accepts. No origins means any origin.
type CORSConfig struct {
	AllowedOrigins []string
	AllowHeaders   []string
}

// Middleware bundles the gin middlewares shared by every route.
type Middleware struct {
	l    log.Logger
	cors CORSConfig
}

func New(l log.Logger, cors CORSConfig) Middleware {
	return Middleware{
		l:    l,
		cors: cors,
	}
}
