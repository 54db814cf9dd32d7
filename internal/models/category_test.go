// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "testing"

func TestCategoryIsRoot(t *testing.T) {
	tests := []struct {
		name     string
		parentID *string
		want     bool
	}{
		{name: "nil parent", parentID: nil, want: true},
		{name: "with parent", parentID: StringPtr("ai"), want: false},
		{name: "empty parent string is still a parent", parentID: StringPtr(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Category{ParentID: tt.parentID}
			if got := c.IsRoot(); got != tt.want {
				t.Errorf("IsRoot() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestCategoryCloneIsDeep verifies that mutating a clone never reaches the
// original subtree.
func TestCategoryCloneIsDeep(t *testing.T) {
	orig := Category{
		ID:   "ai",
		Name: "AI",
		Children: []Category{
			{ID: "ai-text", ParentID: StringPtr("ai")},
		},
	}

	cp := orig.Clone()
	cp.Children[0].Name = "changed"
	*cp.Children[0].ParentID = "other"
	cp.Children = append(cp.Children, Category{ID: "extra"})

	if orig.Children[0].Name != "" {
		t.Errorf("child name leaked into original: %q", orig.Children[0].Name)
	}
	if *orig.Children[0].ParentID != "ai" {
		t.Errorf("parent pointer shared with clone: %q", *orig.Children[0].ParentID)
	}
	if len(orig.Children) != 1 {
		t.Errorf("children len: got %d, want 1", len(orig.Children))
	}
}

func TestCloneCategoriesNil(t *testing.T) {
	if got := CloneCategories(nil); got != nil {
		t.Errorf("CloneCategories(nil) = %v, want nil", got)
	}
}

func TestCountCategories(t *testing.T) {
	forest := []Category{
		{ID: "a", Children: []Category{
			{ID: "a1"},
			{ID: "a2", Children: []Category{{ID: "a2x"}}},
		}},
		{ID: "b"},
	}
	if got := CountCategories(forest); got != 5 {
		t.Errorf("CountCategories = %d, want 5", got)
	}
	if got := CountCategories(nil); got != 0 {
		t.Errorf("CountCategories(nil) = %d, want 0", got)
	}
}
