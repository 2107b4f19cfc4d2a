package session

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/dasdy/uisnippets/logging"
	"github.com/google/uuid"
)

// Factory builds the UI instance owned by a new session.
type Factory[T any] func(id string) T

type entry[T any] struct {
	mu       sync.Mutex
	ui       T
	lastSeen time.Time
}

// Manager keeps one UI instance per browser session. Access to a single
// instance is serialized, different sessions never share state.
type Manager[T any] struct {
	mu       sync.Mutex
	cookie   string
	ttl      time.Duration
	factory  Factory[T]
	sessions map[string]*entry[T]
	now      func() time.Time
	onChange func(n int)
}

type Option[T any] func(*Manager[T])

// WithTTL evicts sessions idle for longer than ttl. Zero keeps sessions forever.
func WithTTL[T any](ttl time.Duration) Option[T] {
	return func(m *Manager[T]) { m.ttl = ttl }
}

func withClock[T any](now func() time.Time) Option[T] {
	return func(m *Manager[T]) { m.now = now }
}

// WithSizeListener is called with the number of sessions whenever it changes.
func WithSizeListener[T any](listener func(n int)) Option[T] {
	return func(m *Manager[T]) { m.onChange = listener }
}

func NewManager[T any](cookie string, factory Factory[T], opts ...Option[T]) *Manager[T] {
	m := &Manager[T]{
		cookie:   cookie,
		factory:  factory,
		sessions: make(map[string]*entry[T]),
		now:      time.Now,
		onChange: func(int) {},
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *Manager[T]) lookup(w http.ResponseWriter, r *http.Request) (string, *entry[T]) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweepLocked(now)

	if c, err := r.Cookie(m.cookie); err == nil {
		if e, ok := m.sessions[c.Value]; ok {
			e.lastSeen = now

			return c.Value, e
		}
	}

	id := uuid.NewString()
	e := &entry[T]{ui: m.factory(id), lastSeen: now}
	m.sessions[id] = e
	m.onChange(len(m.sessions))

	slog.Info("Created session", "cookie", m.cookie, "session", id)

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id, e
}

// Access runs fn with the UI instance of the request's session, creating the
// session (and its cookie) when the request carries none or an expired one. The
// context passed to fn carries the session id for logging.
func (m *Manager[T]) Access(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, ui T)) {
	id, e := m.lookup(w, r)

	ctx := logging.AppendCtx(r.Context(), slog.String("session", id))

	e.mu.Lock()
	defer e.mu.Unlock()

	fn(ctx, e.ui)
}

func (m *Manager[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sessions)
}

// End forgets the request's session and expires its cookie. The next request
// starts over with a fresh UI instance.
func (m *Manager[T]) End(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(m.cookie)
	if err != nil {
		return
	}

	if m.drop(c.Value) {
		slog.Info("Ended session", "cookie", m.cookie, "session", c.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager[T]) drop(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return false
	}

	delete(m.sessions, id)
	m.onChange(len(m.sessions))

	return true
}

// Sweep evicts sessions idle for longer than the TTL.
func (m *Manager[T]) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.sweepLocked(now)
}

func (m *Manager[T]) sweepLocked(now time.Time) int {
	if m.ttl <= 0 {
		return 0
	}

	evicted := 0

	for id, e := range m.sessions {
		if now.Sub(e.lastSeen) > m.ttl {
			delete(m.sessions, id)

			evicted++
		}
	}

	if evicted > 0 {
		slog.Debug("Evicted idle sessions", "cookie", m.cookie, "count", evicted)
		m.onChange(len(m.sessions))
	}

	return evicted
}
