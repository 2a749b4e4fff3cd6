// Package auth contains simple hand-written test doubles for the auth ports.
// These are lightweight and suitable for unit tests without codegen.
package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	domainauth "github.com/shopforge/admin-api/internal/domain/auth"
	"github.com/shopforge/admin-api/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.PasswordHasher = (*FakeHasher)(nil)
	_ ports.TokenService   = (*FakeTokenService)(nil)
	_ ports.TokenDenylist  = (*MemoryDenylist)(nil)
)

// FakeHasher is a deterministic PasswordHasher for tests. It records the
// password inside the "hash" so Verify is a plain string comparison, with no
// key derivation cost.
type FakeHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(stored, candidate string) bool
}

const fakeHashPrefix = "fake-hash:"

// FakeHash returns the stored form FakeHasher produces for a password.
// Use it to seed user fixtures that the default Verify will accept.
func FakeHash(password string) string {
	return fakeHashPrefix + password
}

func (f *FakeHasher) Hash(password string) (string, error) {
	if f.HashFunc != nil {
		return f.HashFunc(password)
	}
	return FakeHash(password), nil
}

func (f *FakeHasher) Verify(stored, candidate string) bool {
	if f.VerifyFunc != nil {
		return f.VerifyFunc(stored, candidate)
	}
	password, ok := strings.CutPrefix(stored, fakeHashPrefix)
	return ok && password == candidate
}

// FakeTokenService is a TokenService double that issues readable fake tokens
// and verifies them against a configurable claims table.
type FakeTokenService struct {
	IssueFunc  func(identity domainauth.Identity, ttl time.Duration) (string, error)
	VerifyFunc func(ctx context.Context, token string) (domainauth.Claims, error)

	mu     sync.Mutex
	issued int

	// Claims returned by the default Verify for any token the default Issue
	// produced. Zero value means Verify echoes the identity embedded at issue.
	byToken map[string]domainauth.Claims
}

func (f *FakeTokenService) Issue(identity domainauth.Identity, ttl time.Duration) (string, error) {
	if f.IssueFunc != nil {
		return f.IssueFunc(identity, ttl)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.issued++
	if ttl < 0 {
		ttl = time.Hour
	}
	now := time.Now()
	token := "fake-token-" + identity.Username
	if f.byToken == nil {
		f.byToken = make(map[string]domainauth.Claims)
	}
	f.byToken[token] = domainauth.Claims{
		UserID:    identity.UserID,
		Username:  identity.Username,
		Role:      identity.Role,
		TokenID:   token,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}
	return token, nil
}

func (f *FakeTokenService) Verify(ctx context.Context, token string) (domainauth.Claims, error) {
	if f.VerifyFunc != nil {
		return f.VerifyFunc(ctx, token)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if claims, ok := f.byToken[token]; ok {
		return claims, nil
	}
	return domainauth.Claims{}, errFakeTokenUnknown
}

// IssuedCount reports how many tokens the default Issue produced.
func (f *FakeTokenService) IssuedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.issued
}

type fakeTokenError string

func (e fakeTokenError) Error() string { return string(e) }

const errFakeTokenUnknown = fakeTokenError("invalid or expired session")

// MemoryDenylist is an in-memory TokenDenylist for tests.
type MemoryDenylist struct {
	RevokeFunc    func(ctx context.Context, tokenID string, until time.Time) error
	IsRevokedFunc func(ctx context.Context, tokenID string) (bool, error)

	mu      sync.Mutex
	revoked map[string]time.Time
}

func (d *MemoryDenylist) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	if d.RevokeFunc != nil {
		return d.RevokeFunc(ctx, tokenID, until)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.revoked == nil {
		d.revoked = make(map[string]time.Time)
	}
	d.revoked[tokenID] = until
	return nil
}

func (d *MemoryDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if d.IsRevokedFunc != nil {
		return d.IsRevokedFunc(ctx, tokenID)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	until, ok := d.revoked[tokenID]
	return ok && time.Now().Before(until), nil
}

// Revoked reports whether Revoke was called for tokenID, regardless of expiry.
func (d *MemoryDenylist) Revoked(tokenID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.revoked[tokenID]
	return ok
}
