package repository

import "errors"

var (
	ErrFailedToCreate = errors.New("failed to create record")
	ErrFailedToUpdate = errors.New("failed to update record")
	ErrFailedToDelete = errors.New("failed to delete record")
	ErrRejected       = errors.New("backend rejected the request")
	ErrNoEndpoint     = errors.New("endpoint not configured")
)
