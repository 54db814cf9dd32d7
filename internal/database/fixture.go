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
	"time"

	"toolnav/internal/models"
	"toolnav/internal/seed"
)

// FixtureSource loads catalog fixtures from the catalog_categories and
// catalog_tools tables. It implements seed.Source.
type FixtureSource struct {
	DB *sql.DB
}

// Name implements seed.Source.
func (FixtureSource) Name() string { return "postgres" }

// Load reads both fixture tables and rebuilds the category forest.
func (s FixtureSource) Load(ctx context.Context) (seed.Data, error) {
	cats, err := s.loadCategories(ctx)
	if err != nil {
		return seed.Data{}, err
	}
	tools, err := s.loadTools(ctx)
	if err != nil {
		return seed.Data{}, err
	}

	d := seed.Data{Categories: cats, Tools: tools}
	seed.Normalize(&d, time.Now().UTC())
	if err := seed.Validate(d); err != nil {
		return seed.Data{}, fmt.Errorf("fixture database: %w", err)
	}
	return d, nil
}

func (s FixtureSource) loadCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, name, parent_id, sort_order, enabled
		FROM catalog_categories
		ORDER BY position, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list fixture categories: %w", err)
	}
	defer rows.Close()

	var flat []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ParentID, &c.Order, &c.Enabled); err != nil {
			return nil, fmt.Errorf("scan fixture category: %w", err)
		}
		flat = append(flat, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list fixture categories: %w", err)
	}

	tree, placed := buildTree(flat)
	if placed != len(flat) {
		slog.Warn("fixture categories unreachable from any root", "count", len(flat)-placed)
	}
	return tree, nil
}

// buildTree nests a flat, position-ordered list under its parents and
// returns the forest together with the number of rows placed in it. Rows
// caught in a parent cycle are unreachable and left out.
func buildTree(flat []models.Category) ([]models.Category, int) {
	byParent := make(map[string][]models.Category)
	var roots []models.Category
	for _, c := range flat {
		if c.ParentID == nil {
			roots = append(roots, c)
			continue
		}
		byParent[*c.ParentID] = append(byParent[*c.ParentID], c)
	}

	placed := 0
	var attach func(level []models.Category) []models.Category
	attach = func(level []models.Category) []models.Category {
		for i := range level {
			placed++
			if kids, ok := byParent[level[i].ID]; ok {
				delete(byParent, level[i].ID)
				level[i].Children = attach(kids)
			}
		}
		return level
	}
	return attach(roots), placed
}

func (s FixtureSource) loadTools(ctx context.Context) ([]models.Tool, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, name, url, description, icon, categories::text, tags::text,
		       enabled, favorite, click_count, sort_order, created_at, updated_at
		FROM catalog_tools
		ORDER BY position, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list fixture tools: %w", err)
	}
	defer rows.Close()

	var tools []models.Tool
	for rows.Next() {
		var t models.Tool
		var cats, tags string
		err := rows.Scan(
			&t.ID, &t.Name, &t.URL, &t.Description, &t.Icon, &cats, &tags,
			&t.Enabled, &t.Favorite, &t.ClickCount, &t.Order, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan fixture tool: %w", err)
		}
		if err := json.Unmarshal([]byte(cats), &t.Categories); err != nil {
			return nil, fmt.Errorf("decode categories of %s: %w", t.ID, err)
		}
		if err := json.Unmarshal([]byte(tags), &t.Tags); err != nil {
			return nil, fmt.Errorf("decode tags of %s: %w", t.ID, err)
		}
		t.CreatedAt = t.CreatedAt.UTC()
		t.UpdatedAt = t.UpdatedAt.UTC()
		tools = append(tools, t)
	}
	return tools, rows.Err()
}
