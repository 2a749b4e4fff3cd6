package auth

// Package auth contains domain-level types for authentication and tokens.
// It is pure and free of framework/adapter concerns.

import "time"

// Role represents an application's authorization role.
// Kept in string form for easy persistence and token claims.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// Identity is the subset of a user record copied into a token at issuance.
// It is also the wire shape of the identity echo endpoint.
type Identity struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Claims are the structured fields carried inside a verified token.
// All identity fields are required; verification fails fast when any is absent.
type Claims struct {
	UserID    string
	Username  string
	Role      Role
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IsAdmin reports whether the claims carry the admin role.
func (c Claims) IsAdmin() bool { return c.Role == RoleAdmin }

// Identity returns the identity portion of the claims.
func (c Claims) Identity() Identity {
	return Identity{UserID: c.UserID, Username: c.Username, Role: c.Role}
}
