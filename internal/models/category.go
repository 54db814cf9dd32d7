// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Category is a node in the category forest. Roots have a nil ParentID;
// every child's ParentID names the node holding it in Children.
type Category struct {
	ID       string     `json:"id" yaml:"id"`
	Name     string     `json:"name" yaml:"name"`
	ParentID *string    `json:"parentId" yaml:"parentId"`
	Children []Category `json:"children,omitempty" yaml:"children,omitempty"`
	Order    int        `json:"order" yaml:"order"`
	Enabled  bool       `json:"enabled" yaml:"enabled"`
}

// NewCategory carries the caller-supplied fields of a category that does
// not have an ID yet.
type NewCategory struct {
	Name     string     `json:"name"`
	ParentID *string    `json:"parentId"`
	Children []Category `json:"children,omitempty"`
	Order    int        `json:"order"`
	Enabled  bool       `json:"enabled"`
}

// IsRoot reports whether the category sits at the top of the forest.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

// Clone returns a deep copy of the category and its whole subtree.
func (c Category) Clone() Category {
	if c.ParentID != nil {
		pid := *c.ParentID
		c.ParentID = &pid
	}
	if c.Children != nil {
		children := make([]Category, len(c.Children))
		for i, child := range c.Children {
			children[i] = child.Clone()
		}
		c.Children = children
	}
	return c
}

// CloneCategories deep-copies a forest.
func CloneCategories(cats []Category) []Category {
	if cats == nil {
		return nil
	}
	out := make([]Category, len(cats))
	for i, c := range cats {
		out[i] = c.Clone()
	}
	return out
}

// CountCategories returns the number of nodes in a forest, at every depth.
func CountCategories(cats []Category) int {
	n := 0
	for _, c := range cats {
		n += 1 + CountCategories(c.Children)
	}
	return n
}

// StringPtr returns a pointer to s. Handy for ParentID literals.
func StringPtr(s string) *string {
	return &s
}
