package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopforge/admin-api/internal/client"
)

func (a *App) cmdLogin(ctx context.Context) error {
	username, err := a.promptLine("Username: ")
	if err != nil {
		return err
	}
	password, err := a.promptPassword("Password: ")
	if err != nil {
		return err
	}

	token, err := a.api.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	if err := a.session.SetToken(token); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	fmt.Fprintf(a.out, "signed in as %s\n", username)
	return nil
}

func (a *App) cmdLogout(ctx context.Context) error {
	// The local slot is cleared even when server-side revocation fails;
	// a token the server no longer honors is worthless to keep around.
	err := a.api.Logout(ctx)
	if err != nil && !errors.Is(err, client.ErrUnauthenticated) {
		fmt.Fprintf(a.errOut, "warning: server revocation failed: %v\n", err)
	}
	if err := a.session.SetToken(""); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	fmt.Fprintln(a.out, "signed out")
	return nil
}

func (a *App) cmdWhoami(ctx context.Context) error {
	identity, err := a.api.Me(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(identity, "")
}
