// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"toolnav/internal/config"
	"toolnav/internal/models"
	"toolnav/internal/seed"
)

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Export and check catalog fixtures",
	}
	cmd.AddCommand(newSeedExportCmd(), newSeedCheckCmd())
	return cmd
}

func newSeedExportCmd() *cobra.Command {
	var source, file string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a seed source as a YAML fixture to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags take precedence over the environment and are validated
			// together with it.
			getenv := func(key string) string {
				switch {
				case key == "SEED_SOURCE" && source != "":
					return source
				case key == "SEED_FILE" && file != "":
					return file
				}
				return os.Getenv(key)
			}
			cfg, err := config.LoadFrom(getenv)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			// stdout carries the fixture.
			setupLogger(cmd.ErrOrStderr(), cfg.LogLevel)

			src, closeSource, err := openSource(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("open seed source: %w", err)
			}
			defer closeSource()

			d, err := src.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load %s: %w", src.Name(), err)
			}
			b, err := seed.Marshal(d)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "seed source to export: "+strings.Join([]string{config.SeedBuiltin, config.SeedFile, config.SeedPostgres}, ", ")+" (default from SEED_SOURCE)")
	cmd.Flags().StringVar(&file, "file", "", "fixture path for --source file (default from SEED_FILE)")
	return cmd
}

func newSeedCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Parse and validate a YAML fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := seed.FileSource{Path: args[0]}.Load(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d categories, %d tools)\n",
				args[0], models.CountCategories(d.Categories), len(d.Tools))
			return nil
		},
	}
}
