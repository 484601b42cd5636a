// Package models holds the HeartTrack domain types shared by repositories,
// services and the HTTP layer.
package models

import "strings"

type Role string

const (
	RolePatient Role = "patient"
	RoleAdmin   Role = "admin"
)

// ParseRole maps user input to a Role. An empty string means patient.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case "", RolePatient:
		return RolePatient, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}

// User is a registered account. Password holds either the plaintext
// password or an encoded hash, depending on the configured password mode.
type User struct {
	ID       int64
	Email    string
	Password string
	Role     Role
}

// NormalizeEmail is the lookup key for users: emails compare case-insensitively.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserView is what leaves the server about a user. It has no password field.
type UserView struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (u User) View() UserView {
	return UserView{ID: u.ID, Email: u.Email, Role: u.Role}
}

// Identity is the session's copy of the logged-in user, taken at login.
// It is not refreshed if the user record changes afterwards.
type Identity struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }
