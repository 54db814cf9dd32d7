// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package seed provides the fixture data a catalog is initialized from.
// Fixtures are YAML documents holding a category forest and a tool list;
// the builtin sample set is embedded in the binary.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"toolnav/internal/models"
)

//go:embed sample.yaml
var sampleYAML []byte

// Data is a complete catalog snapshot. Loading it into a store replaces
// whatever the store held before.
type Data struct {
	Categories []models.Category `yaml:"categories"`
	Tools      []models.Tool     `yaml:"tools"`
}

// Source loads fixture data from somewhere.
type Source interface {
	Name() string
	Load(ctx context.Context) (Data, error)
}

// Builtin returns a fresh copy of the embedded sample catalog with
// timestamps set to the current time.
func Builtin() Data {
	d, err := Parse(sampleYAML)
	if err != nil {
		panic(fmt.Sprintf("seed: embedded sample catalog is invalid: %v", err))
	}
	return d
}

// Parse decodes and normalizes a YAML fixture, then validates it.
func Parse(b []byte) (Data, error) {
	var d Data
	if err := yaml.Unmarshal(b, &d); err != nil {
		return Data{}, fmt.Errorf("parse fixture: %w", err)
	}
	Normalize(&d, time.Now().UTC())
	if err := Validate(d); err != nil {
		return Data{}, err
	}
	return d, nil
}

// Marshal encodes data as a YAML fixture.
func Marshal(d Data) ([]byte, error) {
	b, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshal fixture: %w", err)
	}
	return b, nil
}

// Normalize repairs loaded data in place: every ParentID is rewritten to
// the ID of the node that holds it (nil for roots), missing timestamps are
// set to now and nil category/tag lists become empty.
func Normalize(d *Data, now time.Time) {
	normalizeLevel(d.Categories, nil)
	for i := range d.Tools {
		t := &d.Tools[i]
		if t.Categories == nil {
			t.Categories = []string{}
		}
		if t.Tags == nil {
			t.Tags = []string{}
		}
		if t.CreatedAt.IsZero() {
			t.CreatedAt = now
		}
		if t.UpdatedAt.IsZero() {
			t.UpdatedAt = t.CreatedAt
		}
	}
}

func normalizeLevel(cats []models.Category, parent *string) {
	for i := range cats {
		c := &cats[i]
		if parent == nil {
			c.ParentID = nil
		} else {
			c.ParentID = models.StringPtr(*parent)
		}
		normalizeLevel(c.Children, &c.ID)
	}
}

// Validate reports every structural problem in d: empty or duplicate IDs
// and negative click counts.
func Validate(d Data) error {
	var errs []error

	seen := make(map[string]bool)
	var walk func(cats []models.Category)
	walk = func(cats []models.Category) {
		for _, c := range cats {
			switch {
			case c.ID == "":
				errs = append(errs, fmt.Errorf("category %q has no id", c.Name))
			case seen[c.ID]:
				errs = append(errs, fmt.Errorf("duplicate category id %q", c.ID))
			}
			seen[c.ID] = true
			walk(c.Children)
		}
	}
	walk(d.Categories)

	toolIDs := make(map[string]bool, len(d.Tools))
	for _, t := range d.Tools {
		switch {
		case t.ID == "":
			errs = append(errs, fmt.Errorf("tool %q has no id", t.Name))
		case toolIDs[t.ID]:
			errs = append(errs, fmt.Errorf("duplicate tool id %q", t.ID))
		}
		toolIDs[t.ID] = true
		if t.ClickCount < 0 {
			errs = append(errs, fmt.Errorf("tool %q has negative click count %d", t.ID, t.ClickCount))
		}
	}

	return errors.Join(errs...)
}

// BuiltinSource serves the embedded sample catalog.
type BuiltinSource struct{}

// Name implements Source.
func (BuiltinSource) Name() string { return "builtin" }

// Load implements Source.
func (BuiltinSource) Load(context.Context) (Data, error) {
	return Builtin(), nil
}

// FileSource reads a YAML fixture from disk on every Load.
type FileSource struct {
	Path string
}

// Name implements Source.
func (s FileSource) Name() string { return "file:" + s.Path }

// Load implements Source.
func (s FileSource) Load(context.Context) (Data, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return Data{}, fmt.Errorf("read fixture: %w", err)
	}
	d, err := Parse(b)
	if err != nil {
		return Data{}, fmt.Errorf("%s: %w", s.Path, err)
	}
	return d, nil
}
