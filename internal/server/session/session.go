// Package session holds per-browser state: each session owns an isolated
// store, the identity of whoever logged in through it, and its live alert
// thresholds.
package session

import (
	"sync"
	"time"

	"github.com/dmitrijs2005/hearttrack/internal/server/models"
	"github.com/dmitrijs2005/hearttrack/internal/server/repositories/repomanager"
)

// Session is the explicit context object every domain operation receives.
// The data model inside is unsynchronised; the HTTP layer holds Lock for the
// duration of a request so a session runs one request at a time.
type Session struct {
	ID         string
	Repos      repomanager.RepositoryManager
	Thresholds models.Thresholds
	CreatedAt  time.Time

	identity *models.Identity
	lastSeen time.Time
	mu       sync.Mutex
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// Identity returns a copy of the logged-in identity, or nil when anonymous.
func (s *Session) Identity() *models.Identity {
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

func (s *Session) IsAuthenticated() bool { return s.identity != nil }

// SetIdentity replaces the current identity. The value is copied.
func (s *Session) SetIdentity(id models.Identity) {
	s.identity = &id
}

func (s *Session) ClearIdentity() {
	s.identity = nil
}
