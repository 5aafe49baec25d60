// Package main is the entry point for the contrib CLI application.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"

	"github.com/ywarnier/oss-contrib/cmd/contrib/cmd"
	contriberrors "github.com/ywarnier/oss-contrib/internal/errors"
)

// Build info set via ldflags at build time.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2026-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cmd.Version = version
	cmd.Commit = commit
	cmd.Date = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// A second interrupt gets the default handling and ends the process.
	context.AfterFunc(ctx, stop)

	root := cmd.NewRootCmd()
	err := fang.Execute(ctx, root, fang.WithVersion(cmd.BuildVersion()))
	return contriberrors.ExitCode(err)
}
