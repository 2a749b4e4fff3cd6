package credhash

// Package credhash implements the ports.PasswordHasher contract with
// PBKDF2-SHA-512 and a per-user random salt. Stored hashes are the composite
// value "hex(salt):hex(key)".

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"github.com/shopforge/admin-api/internal/ports"
)

const (
	saltLen = 16
	keyLen  = 64
	// minIterations is the floor for the configurable iteration count.
	minIterations = 100_000
)

// ErrHashingUnavailable is the opaque error surfaced when hashing cannot run
// (entropy exhaustion). The internal cause is for logs only.
var ErrHashingUnavailable = errors.New("authentication unavailable")

var _ ports.PasswordHasher = (*Hasher)(nil)

// Hasher derives and verifies password hashes with a fixed iteration count.
type Hasher struct {
	iterations int
}

// New creates a Hasher. Iteration counts below the floor are clamped up;
// weakening the derivation via config is not representable.
func New(iterations int) *Hasher {
	if iterations < minIterations {
		iterations = minIterations
	}
	return &Hasher{iterations: iterations}
}

// Hash derives a stored hash from a plaintext password.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingUnavailable, err)
	}

	key := pbkdf2.Key([]byte(password), salt, h.iterations, keyLen, sha512.New)
	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(key), nil
}

// Verify re-derives a key from candidate using the salt embedded in stored and
// compares the derived keys in constant time. Malformed stored values (a
// missing separator, empty parts, or non-hex segments) verify false without
// error; stored data corruption must not crash or leak through error type.
func (h *Hasher) Verify(stored, candidate string) bool {
	saltHex, keyHex, ok := strings.Cut(stored, ":")
	if !ok || saltHex == "" || keyHex == "" {
		return false
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	expected, err := hex.DecodeString(keyHex)
	if err != nil {
		return false
	}

	derived := pbkdf2.Key([]byte(candidate), salt, h.iterations, keyLen, sha512.New)

	// ConstantTimeCompare returns 0 on length mismatch without inspecting
	// bytes, so a truncated stored key fails closed in bounded time.
	return subtle.ConstantTimeCompare(expected, derived) == 1
}
