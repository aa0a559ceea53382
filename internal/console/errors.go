package console

import "errors"

var (
	ErrQuery                 = errors.New("query failed")
	ErrMutation              = errors.New("mutation failed")
	ErrInvalidParams         = errors.New("invalid query params")
	ErrIDNotAllowed          = errors.New("id must not be set on create")
	ErrIDRequired            = errors.New("id is required")
	ErrBusy                  = errors.New("another action is still in progress")
	ErrModalConflict         = errors.New("create and update modals cannot be open together")
	ErrRecordNotFound        = errors.New("record is not on the current page")
	ErrConfirmationNotFound  = errors.New("confirmation not found")
	ErrEntityNotFound        = errors.New("entity not found")
	ErrOperationNotSupported = errors.New("operation not supported for this entity")
	ErrNothingSelected       = errors.New("no rows selected")
	ErrInvalidRecord         = errors.New("invalid record payload")
)
