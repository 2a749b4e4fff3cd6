package client

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempSlot(t *testing.T) *TokenSlot {
	t.Helper()
	return NewTokenSlotAt(filepath.Join(t.TempDir(), "shopadmin", "session.token"))
}

func TestTokenSlot_RoundTrip(t *testing.T) {
	slot := tempSlot(t)

	require.NoError(t, slot.Store("tok-abc"))

	got, err := slot.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", got)
}

func TestTokenSlot_LoadAbsent(t *testing.T) {
	slot := tempSlot(t)

	got, err := slot.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTokenSlot_StoreReplaces(t *testing.T) {
	slot := tempSlot(t)

	require.NoError(t, slot.Store("first"))
	require.NoError(t, slot.Store("second"))

	got, err := slot.Load()
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestTokenSlot_Clear(t *testing.T) {
	slot := tempSlot(t)
	require.NoError(t, slot.Store("tok"))

	require.NoError(t, slot.Clear())

	got, err := slot.Load()
	require.NoError(t, err)
	assert.Empty(t, got)

	// Clearing twice must not fail.
	require.NoError(t, slot.Clear())
}

func TestTokenSlot_FilePrivate(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions only")
	}
	slot := tempSlot(t)
	require.NoError(t, slot.Store("tok"))

	info, err := os.Stat(slot.path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestTokenSlot_LoadTrimsWhitespace(t *testing.T) {
	slot := tempSlot(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(slot.path), 0o700))
	require.NoError(t, os.WriteFile(slot.path, []byte("tok-abc\n"), 0o600))

	got, err := slot.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", got)
}
