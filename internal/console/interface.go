package console

import "context"

// Querier fetches one page of records.
type Querier[T Record] interface {
	Query(ctx context.Context, params QueryParams) (ListResult[T], error)
}

// Commands are the mutation commands of one entity. Each returns true on
// success; failures are surfaced through the Notifier, never returned.
type Commands[T Record] interface {
	Create(ctx context.Context, fields T) bool
	Update(ctx context.Context, record T) bool
	RemoveOne(ctx context.Context, id int64) bool
	RemoveMany(ctx context.Context, ids []int64) bool
}

// Notifier shows transient, non-blocking messages to the operator.
type Notifier interface {
	// Loading shows an in-progress message and returns the func that hides it.
	Loading(ctx context.Context, message string) func()
	Success(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}

// PageHandle is a type-erased Page, used by delivery layers that serve
// several entities at once.
type PageHandle interface {
	Info() EntityInfo
	Load(ctx context.Context, params QueryParams) error
	Refresh(ctx context.Context) error
	Snapshot() Snapshot

	Select(ids []int64) error
	ClearSelection()

	OpenCreate() error
	OpenUpdate(id int64) error
	OpenDetail(id int64) error
	CloseCreate()
	CloseUpdate()
	CloseDetail()

	SubmitCreateJSON(ctx context.Context, raw []byte) (bool, error)
	SubmitUpdateJSON(ctx context.Context, raw []byte) (bool, error)

	RequestRemove(ids []int64) (Confirmation, error)
	RequestBatchRemove() (Confirmation, error)
	Confirm(ctx context.Context, token string) (bool, error)
	Cancel(token string) error
}
