package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/shopforge/admin-api/internal/cli"
	"github.com/shopforge/admin-api/internal/client"
)

const defaultServerURL = "http://localhost:8080"

func main() {
	os.Exit(run())
}

func run() int {
	fs := flag.NewFlagSet("shopadminctl", flag.ContinueOnError)
	server := fs.String("server", serverFromEnv(), "base URL of the shopadmin server")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return 2
	}

	slot, err := client.NewTokenSlot("shopadmin")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	app := cli.NewApp(cli.Options{
		ServerURL: *server,
		Session:   client.NewSession(client.SessionOptions{Slot: slot}),
	})

	if err := app.Run(context.Background(), fs.Args()); err != nil {
		if cli.IsUsageError(err) {
			return 2
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func serverFromEnv() string {
	if v := os.Getenv("SHOPADMIN_SERVER"); v != "" {
		return v
	}
	return defaultServerURL
}
