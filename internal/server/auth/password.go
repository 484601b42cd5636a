package auth

import (
	"fmt"

	"github.com/dmitrijs2005/hearttrack/internal/cryptox"
)

// Password modes accepted by NewPasswordHasher.
const (
	PasswordModePlain  = "plain"
	PasswordModeArgon2 = "argon2"
)

// PasswordHasher turns a password into its stored form and checks a
// candidate against it.
type PasswordHasher interface {
	Hash(password string) string
	Verify(stored, candidate string) bool
}

func NewPasswordHasher(mode string) (PasswordHasher, error) {
	switch mode {
	case "", PasswordModePlain:
		return PlainHasher{}, nil
	case PasswordModeArgon2:
		return Argon2Hasher{}, nil
	default:
		return nil, fmt.Errorf("unknown password mode %q", mode)
	}
}

// PlainHasher stores passwords as given and compares them with ==.
// This matches the demo's original behaviour; use Argon2Hasher for anything
// exposed beyond a laptop.
type PlainHasher struct{}

func (PlainHasher) Hash(password string) string { return password }

func (PlainHasher) Verify(stored, candidate string) bool { return stored == candidate }

type Argon2Hasher struct{}

func (Argon2Hasher) Hash(password string) string { return cryptox.HashPassword(password) }

func (Argon2Hasher) Verify(stored, candidate string) bool {
	ok, err := cryptox.VerifyPassword(stored, candidate)
	return err == nil && ok
}
