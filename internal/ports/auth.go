package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"
	"time"

	domainauth "github.com/shopforge/admin-api/internal/domain/auth"
)

// PasswordHasher produces and verifies composite "hex(salt):hex(key)" password hashes.
type PasswordHasher interface {
	// Hash derives a stored hash from a plaintext password.
	Hash(password string) (string, error)

	// Verify re-derives a key from candidate using the salt embedded in stored
	// and compares in constant time. Malformed stored values verify false, never
	// panic, and never report why.
	Verify(stored, candidate string) bool
}

// TokenService issues and verifies signed, expiring identity tokens.
type TokenService interface {
	// Issue produces a signed token carrying the identity plus issued-at and
	// expiry timestamps. A negative ttl uses the service default; a zero ttl
	// yields a token that expires the moment it is issued.
	Issue(identity domainauth.Identity, ttl time.Duration) (string, error)

	// Verify checks signature, structure, and expiry. Every failure mode is
	// surfaced as the same generic error outside the security boundary.
	Verify(ctx context.Context, token string) (domainauth.Claims, error)
}

// TokenDenylist is the opt-in revocation check consulted during verification.
// A nil denylist means tokens are valid until expiry with no server-side state.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
