package redis

// Package redis provides the Redis-backed token denylist. Revocation is an
// opt-in check: the token service stays stateless unless a denylist is wired
// in, and entries expire with the tokens they revoke so the set never grows
// beyond the live token window.

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopforge/admin-api/internal/ports"
)

var _ ports.TokenDenylist = (*Denylist)(nil)

// Denylist records revoked token IDs in Redis until their natural expiry.
type Denylist struct {
	client redis.UniversalClient
	prefix string
}

// NewDenylist creates a Denylist with the default key prefix.
func NewDenylist(client redis.UniversalClient) *Denylist {
	return &Denylist{client: client, prefix: "denylist:"}
}

// NewDenylistWithPrefix creates a Denylist with a custom key prefix.
func NewDenylistWithPrefix(client redis.UniversalClient, prefix string) *Denylist {
	return &Denylist{client: client, prefix: prefix}
}

// Revoke marks a token ID revoked until the given time. Tokens already past
// expiry need no entry; their signature check fails on time alone.
func (d *Denylist) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	if tokenID == "" {
		return errors.New("token ID cannot be empty")
	}

	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}

	if err := d.client.Set(ctx, d.prefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token ID has a live denylist entry.
func (d *Denylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		// Tokens without an ID cannot be revoked individually; treat them as
		// revoked so they never outlive a logout.
		return true, nil
	}

	_, err := d.client.Get(ctx, d.prefix+tokenID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis get: %w", err)
	}
	return true, nil
}
