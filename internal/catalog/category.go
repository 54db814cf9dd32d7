// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"fmt"
	"slices"

	"toolnav/internal/models"
)

// frame is one level of the explicit DFS stack used by locate.
type frame struct {
	list *[]models.Category
	next int
}

// locate finds the first category with the given ID in depth-first
// pre-order: a node is visited before its children, siblings in slice
// order. It returns the slice holding the node and the node's index.
// The search uses an explicit stack so deep trees cannot exhaust the
// goroutine stack.
func locate(roots *[]models.Category, id string) (*[]models.Category, int, bool) {
	stack := []frame{{list: roots}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(*top.list) {
			stack = stack[:len(stack)-1]
			continue
		}
		list, i := top.list, top.next
		top.next++

		node := &(*list)[i]
		if node.ID == id {
			return list, i, true
		}
		if len(node.Children) > 0 {
			stack = append(stack, frame{list: &node.Children})
		}
	}
	return nil, -1, false
}

// collectIDs returns the IDs of every node in the forest except skip and
// its subtree.
func collectIDs(roots []models.Category, skip *models.Category) map[string]bool {
	seen := make(map[string]bool)
	stack := make([]*models.Category, 0, len(roots))
	for i := range roots {
		stack = append(stack, &roots[i])
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == skip {
			continue
		}
		seen[n.ID] = true
		for i := range n.Children {
			stack = append(stack, &n.Children[i])
		}
	}
	return seen
}

// adoptChildren walks the subtree below parent, pointing every child's
// ParentID at the node that holds it and assigning IDs to children that
// have none. A child ID already present in seen fails with ErrDuplicateID.
// On error parent is left partially rewritten, so callers pass a copy.
func (s *Store) adoptChildren(parent *models.Category, seen map[string]bool) error {
	stack := []*models.Category{parent}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i := range n.Children {
			ch := &n.Children[i]
			if ch.ID == "" {
				ch.ID = s.newID()
			}
			if seen[ch.ID] {
				return fmt.Errorf("category id %q: %w", ch.ID, ErrDuplicateID)
			}
			seen[ch.ID] = true
			ch.ParentID = models.StringPtr(n.ID)
			stack = append(stack, ch)
		}
	}
	return nil
}

// Categories returns a deep copy of the category forest.
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneCategories(s.categories)
}

// FindCategoryByID returns a copy of the first category with the given ID,
// searching the forest depth-first in pre-order.
func (s *Store) FindCategoryByID(id string) (models.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list, i, ok := locate(&s.categories, id)
	if !ok {
		return models.Category{}, false
	}
	return (*list)[i].Clone(), true
}

// AddCategory creates a category with a fresh ID. A nil ParentID appends it
// to the roots; otherwise it is appended to the parent's children. Order is
// stored but does not affect placement.
//
// Nested children are re-parented onto the new node and children without an
// ID get one. When the parent does not exist nothing is added and
// ErrInvalidParent is returned; a child ID already in the forest yields
// ErrDuplicateID.
func (s *Store) AddCategory(in models.NewCategory) (models.Category, error) {
	c := models.Category{
		Name:     in.Name,
		Children: models.CloneCategories(in.Children),
		Order:    in.Order,
		Enabled:  in.Enabled,
	}
	if c.Children == nil {
		c.Children = []models.Category{}
	}
	if in.ParentID != nil {
		c.ParentID = models.StringPtr(*in.ParentID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.newID()

	if len(c.Children) > 0 {
		seen := collectIDs(s.categories, nil)
		seen[c.ID] = true
		if err := s.adoptChildren(&c, seen); err != nil {
			s.logger.Warn("category dropped: child id collision", "name", c.Name, "error", err)
			return models.Category{}, fmt.Errorf("add category %q: %w", c.Name, err)
		}
	}

	if c.ParentID == nil {
		s.categories = append(s.categories, c)
		s.logger.Debug("category added", "id", c.ID, "name", c.Name)
		return c.Clone(), nil
	}

	list, i, ok := locate(&s.categories, *c.ParentID)
	if !ok {
		s.logger.Warn("category dropped: parent does not exist",
			"name", c.Name,
			"parent_id", *c.ParentID,
		)
		return models.Category{}, fmt.Errorf("add category %q under %q: %w", c.Name, *c.ParentID, ErrInvalidParent)
	}
	parent := &(*list)[i]
	parent.Children = append(parent.Children, c)

	s.logger.Debug("category added", "id", c.ID, "name", c.Name, "parent_id", *c.ParentID)
	return c.Clone(), nil
}

// UpdateCategory replaces the first category whose ID matches c.ID with c
// and returns the stored result. The replacement is structural: every
// field, Children included, is taken from c, except ParentID which keeps
// the node where it is. Replacement children are re-parented onto c and
// must not reuse an ID from outside the replaced subtree.
func (s *Store) UpdateCategory(c models.Category) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, i, ok := locate(&s.categories, c.ID)
	if !ok {
		return models.Category{}, fmt.Errorf("update category %q: %w", c.ID, ErrNotFound)
	}
	cur := &(*list)[i]

	repl := c.Clone()
	repl.ParentID = nil
	if cur.ParentID != nil {
		repl.ParentID = models.StringPtr(*cur.ParentID)
	}
	seen := collectIDs(s.categories, cur)
	seen[repl.ID] = true
	if err := s.adoptChildren(&repl, seen); err != nil {
		return models.Category{}, fmt.Errorf("update category %q: %w", c.ID, err)
	}
	*cur = repl

	s.logger.Debug("category updated", "id", c.ID)
	return repl.Clone(), nil
}

// DeleteCategory removes the first category with the given ID together with
// its subtree, then removes that ID from every tool's categories.
//
// Only the exact ID is purged from tools. Tools that referenced a
// descendant of the deleted node keep those references. The purge runs even
// when no category matched, in which case ErrNotFound is returned.
func (s *Store) DeleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, i, found := locate(&s.categories, id)
	if found {
		*list = slices.Delete(*list, i, i+1)
	}

	purged := 0
	for j := range s.tools {
		if s.tools[j].RemoveCategory(id) {
			purged++
		}
	}

	s.logger.Debug("category deleted", "id", id, "found", found, "tools_updated", purged)
	if !found {
		return fmt.Errorf("delete category %q: %w", id, ErrNotFound)
	}
	return nil
}
