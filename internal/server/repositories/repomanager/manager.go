// Package repomanager hands out the repositories that make up one session's
// store.
package repomanager

import (
	"github.com/dmitrijs2005/hearttrack/internal/server/repositories/users"
	"github.com/dmitrijs2005/hearttrack/internal/server/repositories/vitals"
)

type RepositoryManager interface {
	Users() users.Repository
	Vitals() vitals.Repository
}
