package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/hearttrack/internal/server/metrics"
	"github.com/dmitrijs2005/hearttrack/internal/server/models"
	"github.com/dmitrijs2005/hearttrack/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"github.com/juju/clock"
)

// Seeder fills a fresh session store, e.g. with the default admin account.
type Seeder interface {
	Seed(ctx context.Context, repos repomanager.RepositoryManager) error
}

// Registry maps session ids to sessions. It is shared by all request
// goroutines and is safe for concurrent use. Sessions idle for longer than
// the TTL are dropped the next time the registry is touched.
type Registry struct {
	mu         sync.Mutex
	sessions   map[string]*Session
	ttl        time.Duration
	clock      clock.Clock
	seeder     Seeder
	thresholds models.Thresholds
	metrics    *metrics.Metrics
}

type Option func(*Registry)

func WithClock(c clock.Clock) Option { return func(r *Registry) { r.clock = c } }

func WithMetrics(m *metrics.Metrics) Option { return func(r *Registry) { r.metrics = m } }

func NewRegistry(ttl time.Duration, seeder Seeder, defaults models.Thresholds, opts ...Option) *Registry {
	r := &Registry{
		sessions:   make(map[string]*Session),
		ttl:        ttl,
		clock:      clock.WallClock,
		seeder:     seeder,
		thresholds: defaults,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Create starts a new anonymous session with a seeded store.
func (r *Registry) Create(ctx context.Context) (*Session, error) {
	now := r.clock.Now()

	s := &Session{
		ID:         uuid.NewString(),
		Repos:      repomanager.NewInMemoryRepositoryManager(),
		Thresholds: r.thresholds,
		CreatedAt:  now,
		lastSeen:   now,
	}

	if r.seeder != nil {
		if err := r.seeder.Seed(ctx, s.Repos); err != nil {
			return nil, fmt.Errorf("error seeding session store: %w", err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictExpiredLocked(now)
	r.sessions[s.ID] = s
	r.metrics.SessionOpened()

	return s, nil
}

// Get returns a live session and refreshes its idle timer.
func (r *Registry) Get(id string) (*Session, bool) {
	now := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictExpiredLocked(now)

	s, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	s.lastSeen = now
	return s, true
}

// End discards a session and everything it stored.
func (r *Registry) End(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; ok {
		delete(r.sessions, id)
		r.metrics.SessionClosed()
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) TTL() time.Duration { return r.ttl }

func (r *Registry) evictExpiredLocked(now time.Time) {
	if r.ttl <= 0 {
		return
	}
	for id, s := range r.sessions {
		if now.Sub(s.lastSeen) > r.ttl {
			delete(r.sessions, id)
			r.metrics.SessionClosed()
		}
	}
}
