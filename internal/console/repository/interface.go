package repository

import (
	"context"

	"admin-console/internal/console"
)

// Repository is the backend data access of one entity.
type Repository[T console.Record] interface {
	console.Querier[T]
	Create(ctx context.Context, fields T) error
	Update(ctx context.Context, record T) error
	Delete(ctx context.Context, opt DeleteOptions) error
}
