package client

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// slotFileName is the single named slot every session token lives in.
// There is exactly one slot per installation; writing a new token
// replaces the previous one.
const slotFileName = "session.token"

// TokenSlot persists the session token in a single file under the
// user's configuration directory.
type TokenSlot struct {
	path string
}

// NewTokenSlot returns a slot rooted at the platform config directory,
// e.g. ~/.config/<appName>/session.token on Linux.
func NewTokenSlot(appName string) (*TokenSlot, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}
	return &TokenSlot{path: filepath.Join(dir, appName, slotFileName)}, nil
}

// NewTokenSlotAt returns a slot backed by an explicit file path.
func NewTokenSlotAt(path string) *TokenSlot {
	return &TokenSlot{path: path}
}

// Load reads the persisted token. An absent slot is not an error; it
// returns the empty string.
func (s *TokenSlot) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read token slot: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Store writes the token to the slot, creating parent directories as
// needed. The file is private to the user.
func (s *TokenSlot) Store(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token slot: %w", err)
	}
	return nil
}

// Clear removes the slot. Clearing an absent slot is a no-op.
func (s *TokenSlot) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear token slot: %w", err)
	}
	return nil
}
