// Package main is the entry point for the compatedit CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/iw2rmb/compatedit/internal/cli"
	"github.com/iw2rmb/compatedit/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		logging.Default().Error("command failed", logging.FieldError, err)
		return 1
	}
	return 0
}
