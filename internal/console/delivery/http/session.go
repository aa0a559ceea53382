package http

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"admin-console/internal/console"
	"admin-console/pkg/log"
	"admin-console/pkg/notice"
)

const (
	defaultMaxSessions = 256
	defaultSessionTTL  = 30 * time.Minute
	defaultNoticeTTL   = 3 * time.Second
	noticesPerSession  = 32
)

// session is one operator's console: a notice feed and the pages they opened.
type session struct {
	id   string
	feed *notice.Feed

	mu    sync.Mutex
	pages map[string]console.PageHandle
}

// sessionStore keeps sessions in an LRU; idle ones expire after ttl.
type sessionStore struct {
	reg       *console.Registry
	sessions  *expirable.LRU[string, *session]
	noticeTTL time.Duration
	l         log.Logger
}

func newSessionStore(reg *console.Registry, cfg SessionConfig, l log.Logger) *sessionStore {
	if cfg.Max <= 0 {
		cfg.Max = defaultMaxSessions
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultSessionTTL
	}
	if cfg.NoticeTTL <= 0 {
		cfg.NoticeTTL = defaultNoticeTTL
	}
	return &sessionStore{
		reg:       reg,
		sessions:  expirable.NewLRU[string, *session](cfg.Max, nil, cfg.TTL),
		noticeTTL: cfg.NoticeTTL,
		l:         l,
	}
}

func (s *sessionStore) create() *session {
	sess := &session{
		id:    uuid.NewString(),
		feed:  notice.NewFeed(noticesPerSession, s.noticeTTL, s.l),
		pages: make(map[string]console.PageHandle),
	}
	s.sessions.Add(sess.id, sess)
	return sess
}

// get returns the session and restarts its ttl.
func (s *sessionStore) get(id string) (*session, bool) {
	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, false
	}
	s.sessions.Add(id, sess)
	return sess, true
}

// page returns the session's page for entity, creating and loading it on
// first use. A failed first load is kept in the page snapshot.
func (s *sessionStore) page(ctx context.Context, sess *session, entity string) (console.PageHandle, error) {
	sess.mu.Lock()
	p, ok := sess.pages[entity]
	if ok {
		sess.mu.Unlock()
		return p, nil
	}
	p, err := s.reg.NewPage(entity, sess.feed)
	if err != nil {
		sess.mu.Unlock()
		return nil, err
	}
	sess.pages[entity] = p
	sess.mu.Unlock()

	if err := p.Load(ctx, p.Info().InitialParams()); err != nil {
		s.l.Warnf(ctx, "console.delivery.http.page: initial load of %s: %v", entity, err)
	}
	return p, nil
}
