//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	domainauth "github.com/shopforge/admin-api/internal/domain/auth"
)

const (
	maxUsernameLen = 64
)

// User represents an operator account. The password hash is a composite
// "hex(salt):hex(key)" value produced by the credential hasher and is never
// serialized into API responses.
type User struct {
	ID           string          `json:"id"         db:"id"`
	Username     string          `json:"username"   db:"username"`
	PasswordHash string          `json:"-"          db:"password_hash"`
	Role         domainauth.Role `json:"role"       db:"role"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}

// CreateUserRequest represents parameters to provision a User.
// Password is the plaintext to be hashed at creation; it is never stored.
type CreateUserRequest struct {
	Username string          `json:"username"`
	Password string          `json:"password"`
	Role     domainauth.Role `json:"role"`
}

// Validate validates CreateUserRequest.
func (r *CreateUserRequest) Validate() error {
	username := strings.TrimSpace(r.Username)
	if username == "" {
		return errors.New("username is required and cannot be empty")
	}
	if utf8.RuneCountInString(username) > maxUsernameLen {
		return errors.New("username cannot exceed 64 characters")
	}
	if r.Password == "" {
		return errors.New("password is required and cannot be empty")
	}
	switch r.Role {
	case domainauth.RoleAdmin, domainauth.RoleCustomer:
		return nil
	default:
		return errors.New("role must be one of: admin, customer")
	}
}
