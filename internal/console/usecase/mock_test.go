package usecase

import (
	"context"

	"admin-console/internal/console"
	"admin-console/internal/console/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type testRecord struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (r testRecord) RecordID() int64 { return r.ID }

// mockRepo records calls and returns err for every mutation.
type mockRepo struct {
	err     error
	created []testRecord
	updated []testRecord
	deleted []repository.DeleteOptions
}

func (m *mockRepo) Query(ctx context.Context, params console.QueryParams) (console.ListResult[testRecord], error) {
	return console.ListResult[testRecord]{}, nil
}

func (m *mockRepo) Create(ctx context.Context, fields testRecord) error {
	m.created = append(m.created, fields)
	return m.err
}

func (m *mockRepo) Update(ctx context.Context, record testRecord) error {
	m.updated = append(m.updated, record)
	return m.err
}

func (m *mockRepo) Delete(ctx context.Context, opt repository.DeleteOptions) error {
	m.deleted = append(m.deleted, opt)
	return m.err
}

// mockNotifier keeps every event in order, e.g. "loading:正在添加", "hide".
type mockNotifier struct {
	events []string
}

func (m *mockNotifier) Loading(ctx context.Context, message string) func() {
	m.events = append(m.events, "loading:"+message)
	return func() { m.events = append(m.events, "hide") }
}

func (m *mockNotifier) Success(ctx context.Context, message string) {
	m.events = append(m.events, "success:"+message)
}

func (m *mockNotifier) Error(ctx context.Context, message string) {
	m.events = append(m.events, "error:"+message)
}
