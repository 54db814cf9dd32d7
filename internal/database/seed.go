// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"toolnav/internal/models"
	"toolnav/internal/seed"
)

// Seed fills the fixture tables with d when both are empty. Existing
// fixture rows are never touched.
func Seed(ctx context.Context, db *sql.DB, d seed.Data) error {
	var count int
	err := db.QueryRowContext(ctx,
		`SELECT (SELECT COUNT(*) FROM catalog_categories) + (SELECT COUNT(*) FROM catalog_tools)`,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("seed check fixture: %w", err)
	}

	if count > 0 {
		slog.Info("fixture database already seeded, skipping")
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := insertCategories(ctx, tx, d.Categories); err != nil {
		return err
	}
	if err := insertTools(ctx, tx, d.Tools); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("fixture database seeded",
		"categories", models.CountCategories(d.Categories),
		"tools", len(d.Tools),
	)
	return nil
}

// insertCategories writes a forest parent-first so foreign keys resolve.
func insertCategories(ctx context.Context, tx *sql.Tx, cats []models.Category) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO catalog_categories (id, name, parent_id, sort_order, enabled, position)
		VALUES ($1, $2, $3, $4, $5, $6)`)
	if err != nil {
		return fmt.Errorf("prepare category insert: %w", err)
	}
	defer stmt.Close()

	var insert func(level []models.Category, parentID *string) error
	insert = func(level []models.Category, parentID *string) error {
		for pos, c := range level {
			if _, err := stmt.ExecContext(ctx, c.ID, c.Name, parentID, c.Order, c.Enabled, pos); err != nil {
				return fmt.Errorf("seed category %s: %w", c.ID, err)
			}
			id := c.ID
			if err := insert(c.Children, &id); err != nil {
				return err
			}
		}
		return nil
	}
	return insert(cats, nil)
}

func insertTools(ctx context.Context, tx *sql.Tx, tools []models.Tool) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO catalog_tools (id, name, url, description, icon, categories, tags,
		                           enabled, favorite, click_count, sort_order, position,
		                           created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7::jsonb, $8, $9, $10, $11, $12, $13, $14)`)
	if err != nil {
		return fmt.Errorf("prepare tool insert: %w", err)
	}
	defer stmt.Close()

	for pos, t := range tools {
		cats, err := json.Marshal(nonNil(t.Categories))
		if err != nil {
			return fmt.Errorf("encode categories of %s: %w", t.ID, err)
		}
		tags, err := json.Marshal(nonNil(t.Tags))
		if err != nil {
			return fmt.Errorf("encode tags of %s: %w", t.ID, err)
		}
		_, err = stmt.ExecContext(ctx,
			t.ID, t.Name, t.URL, t.Description, t.Icon, string(cats), string(tags),
			t.Enabled, t.Favorite, t.ClickCount, t.Order, pos,
			t.CreatedAt, t.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("seed tool %s: %w", t.ID, err)
		}
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
