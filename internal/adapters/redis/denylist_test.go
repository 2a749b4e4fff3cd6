package redis

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopforge/admin-api/internal/testutil"
)

func TestDenylist_RevokeAndCheck(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()

	deny := NewDenylistWithPrefix(client, "denylist-test:")
	ctx := context.Background()
	id := uuid.NewString()

	revoked, err := deny.IsRevoked(ctx, id)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, deny.Revoke(ctx, id, time.Now().Add(time.Minute)))

	revoked, err = deny.IsRevoked(ctx, id)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestDenylist_RevokePastExpiryIsNoop(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()

	deny := NewDenylistWithPrefix(client, "denylist-test:")
	ctx := context.Background()
	id := uuid.NewString()

	// The token is already unusable on its own; no entry should be written.
	require.NoError(t, deny.Revoke(ctx, id, time.Now().Add(-time.Minute)))

	revoked, err := deny.IsRevoked(ctx, id)
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestDenylist_EmptyTokenID(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()

	deny := NewDenylist(client)
	ctx := context.Background()

	require.Error(t, deny.Revoke(ctx, "", time.Now().Add(time.Minute)))

	revoked, err := deny.IsRevoked(ctx, "")
	require.NoError(t, err)
	assert.True(t, revoked)
}
