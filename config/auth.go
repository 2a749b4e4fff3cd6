package config

import "time"

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// TokenSecret is the server-wide symmetric secret used to sign session tokens.
	// Required: a missing secret is a startup configuration error, never a silent
	// fallback to a default.
	TokenSecret string `env:"TOKEN_SECRET,required"`

	// TokenTTL is the lifetime of issued tokens.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"1h"`

	// HashIterations is the PBKDF2 iteration count used for hashing and
	// verification. The stored hash format does not record the count, so
	// changing it invalidates previously provisioned credentials.
	HashIterations int `env:"HASH_ITERATIONS" envDefault:"100000"`

	// RevocationEnabled turns on the Redis-backed token denylist. When false the
	// token service is fully stateless and logout is client-side only.
	RevocationEnabled bool `env:"REVOCATION_ENABLED" envDefault:"false"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	const minIterations = 100_000
	if a.HashIterations < minIterations {
		a.HashIterations = minIterations
	}
	if a.TokenTTL <= 0 {
		a.TokenTTL = time.Hour
	}
}
