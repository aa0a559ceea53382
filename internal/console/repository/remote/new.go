package remote

import (
	"fmt"

	"admin-console/internal/console"
	"admin-console/internal/console/repository"
	"admin-console/pkg/log"
)

type implRepository[T console.Record] struct {
	c      *Client
	entity console.Entity[T]
	l      log.Logger
}

// New creates a backend-backed Repository for entity.
func New[T console.Record](c *Client, entity console.Entity[T], l log.Logger) repository.Repository[T] {
	if c == nil {
		panic("console/repository/remote: client is required")
	}
	return &implRepository[T]{c: c, entity: entity, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository[T]) dsn(method string) string {
	return fmt.Sprintf("console/repository/remote.%s[%s]", method, r.entity.Name)
}
