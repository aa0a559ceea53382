package notice

import (
	"context"
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"admin-console/pkg/log"
)

// Level is the kind of a notice.
type Level string

const (
	LevelLoading Level = "loading"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notice is one transient operator message.
type Notice struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	seq       uint64
}

// Feed keeps the live notices of one operator. Notices dismiss themselves
// after ttl; loading notices are also removed by the func Loading returns.
type Feed struct {
	notices *expirable.LRU[string, Notice]
	seq     atomic.Uint64
	l       log.Logger
}

// NewFeed creates a feed holding at most size notices for ttl each.
func NewFeed(size int, ttl time.Duration, l log.Logger) *Feed {
	if size <= 0 {
		size = 32
	}
	return &Feed{
		notices: expirable.NewLRU[string, Notice](size, nil, ttl),
		l:       l,
	}
}

func (f *Feed) add(ctx context.Context, level Level, message string) string {
	n := Notice{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
		seq:       f.seq.Add(1),
	}
	f.notices.Add(n.ID, n)
	if f.l != nil {
		f.l.Debugf(ctx, "notice %s: %s", level, message)
	}
	return n.ID
}

// Loading shows message until the returned func is called or it expires.
func (f *Feed) Loading(ctx context.Context, message string) func() {
	id := f.add(ctx, LevelLoading, message)
	return func() { f.notices.Remove(id) }
}

func (f *Feed) Success(ctx context.Context, message string) {
	f.add(ctx, LevelSuccess, message)
}

func (f *Feed) Error(ctx context.Context, message string) {
	f.add(ctx, LevelError, message)
}

// Active returns the live notices, oldest first.
func (f *Feed) Active() []Notice {
	values := f.notices.Values()
	sort.Slice(values, func(i, j int) bool { return values[i].seq < values[j].seq })
	return values
}

// Latest returns the newest live notice.
func (f *Feed) Latest() (Notice, bool) {
	active := f.Active()
	if len(active) == 0 {
		return Notice{}, false
	}
	return active[len(active)-1], true
}
