// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"slices"
	"time"
)

// Tool is a link in the directory. Categories holds category IDs and is
// treated as a set; entries may dangle until the category is deleted.
type Tool struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	URL         string    `json:"url" yaml:"url"`
	Description string    `json:"description" yaml:"description"`
	Icon        string    `json:"icon" yaml:"icon"`
	Categories  []string  `json:"categories" yaml:"categories"`
	Tags        []string  `json:"tags" yaml:"tags"`
	Enabled     bool      `json:"enabled" yaml:"enabled"`
	Favorite    bool      `json:"favorite" yaml:"favorite"`
	ClickCount  int       `json:"clickCount" yaml:"clickCount"`
	Order       int       `json:"order" yaml:"order"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt" yaml:"updatedAt,omitempty"`
}

// NewTool carries the caller-supplied fields of a tool. The ID, click
// counter and timestamps are assigned by the catalog.
type NewTool struct {
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Categories  []string `json:"categories"`
	Tags        []string `json:"tags"`
	Enabled     bool     `json:"enabled"`
	Favorite    bool     `json:"favorite"`
	Order       int      `json:"order"`
}

// IsFavorite reports whether the tool belongs in the favorites view:
// marked favorite and enabled.
func (t *Tool) IsFavorite() bool {
	return t.Favorite && t.Enabled
}

// InCategory reports whether the tool references the given category ID.
func (t *Tool) InCategory(id string) bool {
	return slices.Contains(t.Categories, id)
}

// RemoveCategory drops every occurrence of id from Categories and reports
// whether anything was removed.
func (t *Tool) RemoveCategory(id string) bool {
	before := len(t.Categories)
	t.Categories = slices.DeleteFunc(t.Categories, func(c string) bool { return c == id })
	return len(t.Categories) != before
}

// Clone returns a copy that shares no slices with t.
func (t Tool) Clone() Tool {
	t.Categories = slices.Clone(t.Categories)
	t.Tags = slices.Clone(t.Tags)
	return t
}

// CloneTools copies a tool list.
func CloneTools(tools []Tool) []Tool {
	if tools == nil {
		return nil
	}
	out := make([]Tool, len(tools))
	for i, t := range tools {
		out[i] = t.Clone()
	}
	return out
}
