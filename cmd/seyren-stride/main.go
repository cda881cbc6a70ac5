// Package main is the entry point for the Seyren Stride notifier CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"seyren-stride/cmd/seyren-stride/commands"
)

func main() {
	exitCode := run()
	os.Exit(exitCode)
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd, cleanup := commands.NewRootCommand()
	defer func() {
		if err := cleanup(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Failed to close container: %v\n", err)
		}
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return 1
	}

	return 0
}
