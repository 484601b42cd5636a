package repomanager

import (
	"github.com/dmitrijs2005/hearttrack/internal/server/repositories/users"
	"github.com/dmitrijs2005/hearttrack/internal/server/repositories/vitals"
)

// InMemoryRepositoryManager is a session-private store. Every session gets
// its own instance; nothing is shared between sessions.
type InMemoryRepositoryManager struct {
	users  *users.InMemoryRepository
	vitals *vitals.InMemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:  users.NewInMemoryRepository(),
		vitals: vitals.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Vitals() vitals.Repository {
	return m.vitals
}
