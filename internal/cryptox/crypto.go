// Package cryptox implements salted argon2id password hashing.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hearttrack/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	hashPrefix = "argon2id"

	saltLen = 16
	keyLen  = 32

	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
)

var ErrMalformedHash = errors.New("malformed password hash")

func deriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, keyLen)
}

// HashPassword returns "argon2id$<salt>$<key>" with base64 (raw std) parts
// and a fresh random salt per call.
func HashPassword(password string) string {
	salt := common.GenerateRandByteArray(saltLen)
	key := deriveKey([]byte(password), salt)

	enc := base64.RawStdEncoding
	return fmt.Sprintf("%s$%s$%s", hashPrefix, enc.EncodeToString(salt), enc.EncodeToString(key))
}

// VerifyPassword reports whether password matches an encoded hash produced
// by HashPassword. The key comparison is constant-time.
func VerifyPassword(encoded, password string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 || parts[0] != hashPrefix {
		return false, ErrMalformedHash
	}

	enc := base64.RawStdEncoding
	salt, err := enc.DecodeString(parts[1])
	if err != nil {
		return false, ErrMalformedHash
	}
	want, err := enc.DecodeString(parts[2])
	if err != nil || len(want) != keyLen {
		return false, ErrMalformedHash
	}

	got := deriveKey([]byte(password), salt)
	return subtle.ConstantTimeCompare(want, got) == 1, nil
}

// IsHash reports whether s looks like an encoded hash from HashPassword.
func IsHash(s string) bool {
	return strings.HasPrefix(s, hashPrefix+"$")
}
