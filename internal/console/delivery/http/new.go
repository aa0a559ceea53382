package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"admin-console/internal/console"
	"admin-console/pkg/log"
)

// Handler serves the console pages of every operator session.
type Handler interface {
	CreateSession(c *gin.Context)
	ListEntities(c *gin.Context)

	GetPage(c *gin.Context)
	LoadPage(c *gin.Context)
	Select(c *gin.Context)
	OpenModal(c *gin.Context)
	CloseModal(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	RequestRemoval(c *gin.Context)
	ConfirmRemoval(c *gin.Context)
	CancelRemoval(c *gin.Context)
	Notices(c *gin.Context)
}

// SessionConfig bounds how many operator sessions are kept and for how long.
type SessionConfig struct {
	Max       int
	TTL       time.Duration
	NoticeTTL time.Duration
}

var _ Handler = (*handler)(nil)

type handler struct {
	l        log.Logger
	reg      *console.Registry
	sessions *sessionStore
}

// New creates the console HTTP handler.
func New(l log.Logger, reg *console.Registry, cfg SessionConfig) *handler {
	return &handler{
		l:        l,
		reg:      reg,
		sessions: newSessionStore(reg, cfg, l),
	}
}
