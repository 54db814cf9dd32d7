// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Command toolnav serves the tool navigation catalog as a JSON API and
// manages its seed fixtures.
//
// Usage:
//
//	toolnav [serve]
//	toolnav seed export [--source builtin|file|postgres] [--file PATH]
//	toolnav seed check FILE
package main

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("toolnav failed", "error", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Running toolnav without a
// subcommand starts the server.
func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	root := &cobra.Command{
		Use:           "toolnav",
		Short:         "Tool navigation catalog server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env is fine; real environment variables still apply.
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			return nil
		},
		RunE: serve.RunE,
	}

	root.AddCommand(serve, newSeedCmd())
	return root
}

// setupLogger installs the process-wide text logger writing to w.
func setupLogger(w io.Writer, level slog.Level) {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
