// Package services contains the HeartTrack domain operations. Every
// operation receives the caller's *session.Session explicitly; services hold
// no per-user state of their own.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hearttrack/internal/common"
	"github.com/dmitrijs2005/hearttrack/internal/server/auth"
	"github.com/dmitrijs2005/hearttrack/internal/server/config"
	"github.com/dmitrijs2005/hearttrack/internal/server/metrics"
	"github.com/dmitrijs2005/hearttrack/internal/server/models"
	"github.com/dmitrijs2005/hearttrack/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/hearttrack/internal/server/session"
)

// UserService handles registration, login and logout, and seeds the default
// admin into new session stores.
type UserService struct {
	hasher     auth.PasswordHasher
	adminEmail string
	// adminHash is the stored form of the admin password, computed once and
	// copied into every new session store.
	adminHash string
	metrics   *metrics.Metrics
}

func NewUserService(hasher auth.PasswordHasher, cfg *config.Config, m *metrics.Metrics) *UserService {
	return &UserService{
		hasher:     hasher,
		adminEmail: cfg.AdminEmail,
		adminHash:  hasher.Hash(cfg.AdminPassword),
		metrics:    m,
	}
}

// Seed implements session.Seeder: the admin account gets id 1 in every store.
func (s *UserService) Seed(ctx context.Context, repos repomanager.RepositoryManager) error {
	_, err := repos.Users().Create(ctx, &models.User{
		Email:    s.adminEmail,
		Password: s.adminHash,
		Role:     models.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("error creating admin user: %w", err)
	}
	return nil
}

// AdminEmail is the seeded admin account shown in the quick-start hint.
func (s *UserService) AdminEmail() string { return s.adminEmail }

// Register adds a user to the session's store. The session identity is
// left as it was; the new user has to log in.
func (s *UserService) Register(ctx context.Context, sess *session.Session, email, password, role string) (*models.UserView, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		s.metrics.Registration("invalid")
		return nil, common.ErrorMissingCredentials
	}

	r, ok := models.ParseRole(role)
	if !ok {
		s.metrics.Registration("invalid")
		return nil, common.ErrorInvalidRole
	}

	user, err := sess.Repos.Users().Create(ctx, &models.User{
		Email:    email,
		Password: s.hasher.Hash(password),
		Role:     r,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			s.metrics.Registration("duplicate")
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.metrics.Registration("ok")
	view := user.View()
	return &view, nil
}

// Login checks the credentials and, on success, replaces the session
// identity with a copy of the user's id, email and role. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, sess *session.Session, email, password string) (*models.Identity, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	user, err := sess.Repos.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.metrics.Login("failed")
			return nil, common.ErrorInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !s.hasher.Verify(user.Password, password) {
		s.metrics.Login("failed")
		return nil, common.ErrorInvalidCredentials
	}

	id := models.Identity{UserID: user.ID, Email: user.Email, Role: user.Role}
	sess.SetIdentity(id)
	s.metrics.Login("ok")

	return &id, nil
}

// Logout clears the identity whether or not anyone was logged in.
func (s *UserService) Logout(ctx context.Context, sess *session.Session) {
	sess.ClearIdentity()
}
