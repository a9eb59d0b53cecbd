// Package main is the entry point for the pkgsum tool.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"

	"go.aurforge.dev/pkgsum/cmd/pkgsum/commands"
	"go.aurforge.dev/pkgsum/internal/app"
	"go.aurforge.dev/pkgsum/internal/core/domain"
	_ "go.aurforge.dev/pkgsum/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return domain.ExitInternalFailure
	}

	cli := commands.New(components.App)
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return domain.ExitCode(err)
	}
	return domain.ExitOK
}
