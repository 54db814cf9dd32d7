// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"fmt"

	"toolnav/internal/config"
	"toolnav/internal/database"
	"toolnav/internal/seed"
)

// openSource builds the seed source named by cfg.SeedSource. The returned
// close function releases any connection the source holds.
//
// For the postgres source the fixture schema is migrated, and in
// development empty fixture tables are filled with the builtin catalog.
func openSource(ctx context.Context, cfg *config.Config) (seed.Source, func(), error) {
	noop := func() {}

	switch cfg.SeedSource {
	case config.SeedBuiltin:
		return seed.BuiltinSource{}, noop, nil

	case config.SeedFile:
		return seed.FileSource{Path: cfg.SeedFile}, noop, nil

	case config.SeedPostgres:
		db, err := database.Connect(cfg.DSN())
		if err != nil {
			return nil, noop, err
		}
		closeDB := func() { db.Close() }

		if err := database.Migrate(db); err != nil {
			closeDB()
			return nil, noop, err
		}
		if cfg.IsDev() {
			if err := database.Seed(ctx, db, seed.Builtin()); err != nil {
				closeDB()
				return nil, noop, err
			}
		}
		return database.FixtureSource{DB: db}, closeDB, nil
	}

	return nil, noop, fmt.Errorf("unknown seed source %q", cfg.SeedSource)
}
