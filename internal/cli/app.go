// Package cli implements the shopadminctl command set. Every command
// consults the local session's navigation decision before touching the
// network, so a signed-out user is pointed at login instead of hitting
// a 401, and a signed-in user cannot stack a second login on top.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/shopforge/admin-api/internal/client"
)

// ErrNotSignedIn is returned when a command requiring a session runs
// against a signed-out slot.
var ErrNotSignedIn = errors.New("not signed in: run 'shopadminctl login' first")

// errUsage marks bad invocations so main can exit 2 instead of 1.
var errUsage = errors.New("usage")

// App wires the session controller, API client, and terminal streams
// behind the command dispatch.
type App struct {
	session *client.Session
	api     *client.API
	in      *bufio.Reader
	out     io.Writer
	errOut  io.Writer
}

// Options configures NewApp. In/Out/ErrOut default to the process
// standard streams; HTTPClient is a test seam.
type Options struct {
	ServerURL  string
	Session    *client.Session
	In         io.Reader
	Out        io.Writer
	ErrOut     io.Writer
	HTTPClient *http.Client
}

func NewApp(opts Options) *App {
	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := opts.ErrOut
	if errOut == nil {
		errOut = os.Stderr
	}

	return &App{
		session: opts.Session,
		api: client.NewAPI(client.APIOptions{
			BaseURL:    opts.ServerURL,
			Session:    opts.Session,
			HTTPClient: opts.HTTPClient,
		}),
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
	}
}

// commandRoute maps a command to the route it represents for the
// navigation policy. Login is the one command that lives on the login
// route; everything else is behind it.
func commandRoute(cmd string) string {
	switch cmd {
	case "login":
		return "/login"
	case "products":
		return "/products"
	case "orders":
		return "/orders"
	default:
		return "/"
	}
}

// Run dispatches one command. args excludes the program name.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return errUsage
	}
	cmd := args[0]

	if err := a.session.Start(); err != nil {
		return err
	}

	if target, redirect := a.session.Decide(commandRoute(cmd)); redirect {
		if target == a.session.LoginRoute() {
			return ErrNotSignedIn
		}
		// Authenticated user invoking login: send them to the landing
		// surface instead of collecting credentials again.
		fmt.Fprintln(a.out, "already signed in; run 'shopadminctl logout' to switch accounts")
		return nil
	}

	switch cmd {
	case "login":
		return a.cmdLogin(ctx)
	case "logout":
		return a.cmdLogout(ctx)
	case "whoami":
		return a.cmdWhoami(ctx)
	case "products":
		return a.cmdProducts(ctx, args[1:])
	case "orders":
		return a.cmdOrders(ctx, args[1:])
	case "help", "-h", "--help":
		a.usage()
		return nil
	default:
		fmt.Fprintf(a.errOut, "unknown command %q\n\n", cmd)
		a.usage()
		return errUsage
	}
}

func (a *App) usage() {
	fmt.Fprint(a.errOut, `Usage: shopadminctl <command> [arguments]

Commands:
  login                          sign in and store the session token
  logout                         revoke the session and clear the token
  whoami                         show the identity behind the session
  products list|get|create|delete
  orders   list|get|set-status

List commands accept --filter <jmespath> to shape the JSON output.
`)
}

// IsUsageError reports whether err came from a bad invocation rather
// than a failed operation.
func IsUsageError(err error) bool {
	return errors.Is(err, errUsage)
}
