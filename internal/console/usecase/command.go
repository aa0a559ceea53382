package usecase

import (
	"context"
	"fmt"

	"admin-console/internal/console"
	"admin-console/internal/console/repository"
)

type messages struct {
	loading, success, failed string
}

var (
	createMsgs = messages{console.MsgCreating, console.MsgCreateSuccess, console.MsgCreateFailed}
	updateMsgs = messages{console.MsgUpdating, console.MsgUpdateSuccess, console.MsgUpdateFailed}
	deleteMsgs = messages{console.MsgDeleting, console.MsgDeleteSuccess, console.MsgDeleteFailed}
)

// run is the template every command follows: show progress, call the
// backend, turn the outcome into a notice and a bool. Errors stop here.
func (uc *implUseCase[T]) run(ctx context.Context, op string, msgs messages, call func(context.Context) error) bool {
	hide := uc.n.Loading(ctx, msgs.loading)
	err := call(ctx)
	hide()

	if err != nil {
		uc.l.Errorf(ctx, "console.usecase.%s[%s]: %v", op, uc.name, fmt.Errorf("%w: %w", console.ErrMutation, err))
		uc.n.Error(ctx, msgs.failed)
		return false
	}
	uc.n.Success(ctx, msgs.success)
	return true
}

// Create adds a record. fields must not carry an id.
func (uc *implUseCase[T]) Create(ctx context.Context, fields T) bool {
	return uc.run(ctx, "Create", createMsgs, func(ctx context.Context) error {
		if fields.RecordID() != 0 {
			return console.ErrIDNotAllowed
		}
		return uc.repo.Create(ctx, fields)
	})
}

// Update sends the record as edited; the backend decides merge semantics.
func (uc *implUseCase[T]) Update(ctx context.Context, record T) bool {
	return uc.run(ctx, "Update", updateMsgs, func(ctx context.Context) error {
		if record.RecordID() < 1 {
			return console.ErrIDRequired
		}
		return uc.repo.Update(ctx, record)
	})
}

// RemoveOne deletes a single record.
func (uc *implUseCase[T]) RemoveOne(ctx context.Context, id int64) bool {
	return uc.run(ctx, "RemoveOne", deleteMsgs, func(ctx context.Context) error {
		if id < 1 {
			return console.ErrIDRequired
		}
		return uc.repo.Delete(ctx, repository.DeleteOptions{IDs: []int64{id}})
	})
}

// RemoveMany deletes ids in one request. An empty list is a no-op success.
func (uc *implUseCase[T]) RemoveMany(ctx context.Context, ids []int64) bool {
	return uc.run(ctx, "RemoveMany", deleteMsgs, func(ctx context.Context) error {
		if len(ids) == 0 {
			return nil
		}
		return uc.repo.Delete(ctx, repository.DeleteOptions{IDs: ids})
	})
}
