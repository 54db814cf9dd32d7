// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"fmt"
	"slices"

	"toolnav/internal/models"
)

// indexOfTool returns the position of the tool with the given ID, or -1.
// Callers must hold s.mu.
func (s *Store) indexOfTool(id string) int {
	return slices.IndexFunc(s.tools, func(t models.Tool) bool { return t.ID == id })
}

// Tools returns a copy of the tool list in its current order.
func (s *Store) Tools() []models.Tool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneTools(s.tools)
}

// FindToolByID returns a copy of the tool with the given ID.
func (s *Store) FindToolByID(id string) (models.Tool, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOfTool(id)
	if i < 0 {
		return models.Tool{}, false
	}
	return s.tools[i].Clone(), true
}

// ToolsInCategory returns the tools that reference the given category ID,
// in list order.
func (s *Store) ToolsInCategory(categoryID string) []models.Tool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Tool{}
	for i := range s.tools {
		if s.tools[i].InCategory(categoryID) {
			out = append(out, s.tools[i].Clone())
		}
	}
	return out
}

// FavoriteTools returns the enabled tools marked as favorite, in list
// order. The result is computed on every call and is a snapshot.
func (s *Store) FavoriteTools() []models.Tool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Tool{}
	for i := range s.tools {
		if s.tools[i].IsFavorite() {
			out = append(out, s.tools[i].Clone())
		}
	}
	return out
}

// AddTool appends a new tool with a fresh ID, a zero click count and both
// timestamps set to the current time.
func (s *Store) AddTool(in models.NewTool) models.Tool {
	t := models.Tool{
		Name:        in.Name,
		URL:         in.URL,
		Description: in.Description,
		Icon:        in.Icon,
		Categories:  slices.Clone(in.Categories),
		Tags:        slices.Clone(in.Tags),
		Enabled:     in.Enabled,
		Favorite:    in.Favorite,
		Order:       in.Order,
	}
	if t.Categories == nil {
		t.Categories = []string{}
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	t.ID = s.newID()
	t.CreatedAt = now
	t.UpdatedAt = now
	s.tools = append(s.tools, t)

	s.logger.Debug("tool added", "id", t.ID, "name", t.Name)
	return t.Clone()
}

// UpdateTool replaces the tool with the same ID by t. UpdatedAt is always
// set to the current time, whatever t carries.
func (s *Store) UpdateTool(t models.Tool) (models.Tool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfTool(t.ID)
	if i < 0 {
		return models.Tool{}, fmt.Errorf("update tool %q: %w", t.ID, ErrNotFound)
	}
	t = t.Clone()
	t.UpdatedAt = s.now()
	s.tools[i] = t

	s.logger.Debug("tool updated", "id", t.ID)
	return t.Clone(), nil
}

// DeleteTool removes the tool with the given ID. Deleting an unknown or
// already deleted tool leaves the store unchanged.
func (s *Store) DeleteTool(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfTool(id)
	if i < 0 {
		return fmt.Errorf("delete tool %q: %w", id, ErrNotFound)
	}
	s.tools = slices.Delete(s.tools, i, i+1)

	s.logger.Debug("tool deleted", "id", id)
	return nil
}

// ToggleFavorite flips the tool's favorite flag and returns the new value.
func (s *Store) ToggleFavorite(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfTool(id)
	if i < 0 {
		return false, fmt.Errorf("toggle favorite %q: %w", id, ErrNotFound)
	}
	s.tools[i].Favorite = !s.tools[i].Favorite
	return s.tools[i].Favorite, nil
}

// IncrementClickCount adds exactly one to the tool's click counter and
// returns the new count.
func (s *Store) IncrementClickCount(id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfTool(id)
	if i < 0 {
		return 0, fmt.Errorf("increment clicks %q: %w", id, ErrNotFound)
	}
	s.tools[i].ClickCount++
	return s.tools[i].ClickCount, nil
}

// ReorderResult describes what ReorderTools did besides reordering.
type ReorderResult struct {
	// Skipped lists requested IDs that matched no tool, or repeated an
	// ID already placed.
	Skipped []string `json:"skipped"`
	// Dropped lists tools that were removed because their ID was not in
	// the requested order.
	Dropped []string `json:"dropped"`
}

// ReorderTools rebuilds the tool list in the order given by ids, setting
// each tool's Order to the 1-based position of its ID in ids. Skipped IDs
// still consume a position.
//
// The new list replaces the old one entirely: tools whose ID is missing from
// ids are removed from the catalog and reported in Dropped. Unknown and
// repeated IDs are skipped.
func (s *Store) ReorderTools(ids []string) ReorderResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := make(map[string]int, len(s.tools))
	for i := range s.tools {
		byID[s.tools[i].ID] = i
	}

	res := ReorderResult{Skipped: []string{}, Dropped: []string{}}
	placed := make(map[string]bool, len(ids))
	reordered := make([]models.Tool, 0, len(ids))
	for pos, id := range ids {
		i, ok := byID[id]
		if !ok || placed[id] {
			res.Skipped = append(res.Skipped, id)
			continue
		}
		placed[id] = true
		t := s.tools[i]
		t.Order = pos + 1
		reordered = append(reordered, t)
	}

	for i := range s.tools {
		if !placed[s.tools[i].ID] {
			res.Dropped = append(res.Dropped, s.tools[i].ID)
		}
	}
	s.tools = reordered

	if len(res.Dropped) > 0 {
		s.logger.Warn("tools dropped by reorder", "dropped", res.Dropped)
	}
	return res
}
