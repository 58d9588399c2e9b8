// Package main is the entry point for the lifedash client.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"

	"github.com/Kxvin1/life-dashboard/cmd/lifedash/commands"
	"github.com/Kxvin1/life-dashboard/internal/adapters/telemetry"
	"github.com/Kxvin1/life-dashboard/internal/app"
	"github.com/Kxvin1/life-dashboard/internal/core/domain"
	_ "github.com/Kxvin1/life-dashboard/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, err
	}))
}

func run(ctx context.Context, args []string, stderr io.Writer, provider ComponentProvider) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}

	if components.Config.TraceEnabled {
		shutdown := telemetry.Setup()
		defer func() { _ = shutdown(context.Background()) }()
	}

	// 2. Interface - CLI
	cli := commands.New(components.App, components.Logger)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			_, _ = fmt.Fprintln(stderr, "Not logged in. Run 'lifedash login' first.")
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
