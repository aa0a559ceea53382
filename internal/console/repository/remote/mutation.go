package remote

import (
	"context"
	"fmt"

	"admin-console/internal/console/repository"
)

func (r *implRepository[T]) send(ctx context.Context, method, path string, body any, sentinel error) error {
	if path == "" {
		return fmt.Errorf("%w: %v", sentinel, repository.ErrNoEndpoint)
	}
	var ack status
	if err := r.c.post(ctx, path, body, &ack); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return fmt.Errorf("%w: %v", sentinel, err)
	}
	if err := ack.rejected(); err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn(method), err)
		return fmt.Errorf("%w: %v", sentinel, err)
	}
	return nil
}

// Create posts the new record. The backend assigns the id.
func (r *implRepository[T]) Create(ctx context.Context, fields T) error {
	return r.send(ctx, "Create", r.entity.Endpoints.Create, fields, repository.ErrFailedToCreate)
}

// Update posts the full record including its id.
func (r *implRepository[T]) Update(ctx context.Context, record T) error {
	return r.send(ctx, "Update", r.entity.Endpoints.Update, record, repository.ErrFailedToUpdate)
}

// Delete posts {ids} in a single request; the backend decides atomicity.
func (r *implRepository[T]) Delete(ctx context.Context, opt repository.DeleteOptions) error {
	return r.send(ctx, "Delete", r.entity.Endpoints.Delete, opt, repository.ErrFailedToDelete)
}
