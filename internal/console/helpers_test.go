package console_test

import (
	"context"
	"sync"

	"admin-console/internal/console"
	"admin-console/pkg/log"
)

type item struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status int    `json:"status"`
}

func (i item) RecordID() int64 { return i.ID }

var testSchema = console.Schema[item]{
	{Key: "id", Label: "编号", Value: func(i item) any { return i.ID }, HideInSearch: true},
	{Key: "name", Label: "名称", Value: func(i item) any { return i.Name }, Link: true},
	{Key: "status", Label: "状态", Value: func(i item) any { return i.Status }, Format: console.Enum(console.YesNo)},
}

func testEntity() console.Entity[item] {
	return console.Entity[item]{
		Name:     "item",
		Title:    "测试列表",
		Columns:  testSchema,
		Ops:      console.Ops{Create: true, Update: true, Delete: true},
		PageSize: 10,
		Paginate: true,
	}
}

// fakeQuerier serves a fixed page and counts calls.
type fakeQuerier struct {
	mu     sync.Mutex
	rows   []item
	err    error
	calls  int
	params []console.QueryParams
}

func (f *fakeQuerier) Query(ctx context.Context, params console.QueryParams) (console.ListResult[item], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.params = append(f.params, params)
	if f.err != nil {
		return console.ListResult[item]{}, f.err
	}
	total := len(f.rows)
	return console.ListResult[item]{
		List:       append([]item(nil), f.rows...),
		Pagination: console.Pagination{Total: &total},
	}, nil
}

func (f *fakeQuerier) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeCommands answers every command with ok; block, when set, holds the
// command until it is closed.
type fakeCommands struct {
	mu      sync.Mutex
	ok      bool
	block   chan struct{}
	started chan struct{}
	created []item
	updated []item
	removed [][]int64
}

func (f *fakeCommands) wait() {
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
}

func (f *fakeCommands) Create(ctx context.Context, fields item) bool {
	f.wait()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, fields)
	return f.ok
}

func (f *fakeCommands) Update(ctx context.Context, record item) bool {
	f.wait()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updated = append(f.updated, record)
	return f.ok
}

func (f *fakeCommands) RemoveOne(ctx context.Context, id int64) bool {
	f.wait()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, []int64{id})
	return f.ok
}

func (f *fakeCommands) RemoveMany(ctx context.Context, ids []int64) bool {
	f.wait()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, ids)
	return f.ok
}

func newTestPage(rows []item, ok bool) (*console.Page[item], *fakeQuerier, *fakeCommands) {
	q := &fakeQuerier{rows: rows}
	c := &fakeCommands{ok: ok}
	return console.NewPage[item](testEntity(), q, c, log.NewNop()), q, c
}
