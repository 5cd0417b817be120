package domain

import (
	"errors"
	"strings"
	"time"
)

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

var ErrNicknameRequired = errors.New("nickname is required")
var ErrNicknameTaken = errors.New("nickname already in use")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrSelfDelete = errors.New("cannot delete own account")
var ErrBootstrapProtected = errors.New("bootstrap admin cannot be deleted")

// User is the single aggregate of the portal. Nickname doubles as the login
// identifier for admins and the public handle for everyone else.
type User struct {
	ID           string    `json:"id"`
	Nickname     string    `json:"nickname"`
	Whatsapp     string    `json:"whatsapp,omitempty"`
	RealName     string    `json:"realName,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Bootstrap    bool      `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidRole reports whether r is one of the two recognised roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleUser
}

// NormalizeNickname applies the canonical nickname form: trimmed, lowercase.
// The unique index on the users collection is built over this form, so every
// write path must go through it.
func NormalizeNickname(nickname string) string {
	return strings.ToLower(strings.TrimSpace(nickname))
}
