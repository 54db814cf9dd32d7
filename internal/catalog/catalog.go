// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog holds the in-memory tool directory: a forest of
// categories and a flat, ordered list of tools. A Store is safe for
// concurrent use; every exported method runs under a single lock and
// returns copies, never references into the store's state.
package catalog

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"toolnav/internal/models"
	"toolnav/internal/seed"
)

var (
	// ErrNotFound is returned when no category or tool has the given ID.
	ErrNotFound = errors.New("not found")

	// ErrInvalidParent is returned by AddCategory when the parent ID does
	// not resolve to an existing category.
	ErrInvalidParent = errors.New("parent category does not exist")

	// ErrDuplicateID is returned when a nested child carries an ID that is
	// already used elsewhere in the forest.
	ErrDuplicateID = errors.New("category id already in use")
)

// Store is the catalog state and the operations on it.
type Store struct {
	mu         sync.RWMutex
	categories []models.Category
	tools      []models.Tool

	newID  func() string
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the default UUID generator. The generator must
// never return an ID already in use.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithClock replaces time.Now for timestamping tools.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) { s.now = fn }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New returns an empty store. Call InitializeData or Reset to populate it.
func New(opts ...Option) *Store {
	s := &Store{
		newID:  uuid.NewString,
		now:    func() time.Time { return time.Now().UTC() },
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// InitializeData replaces the whole catalog with the builtin sample set.
func (s *Store) InitializeData() {
	s.Reset(seed.Builtin())
}

// Reset replaces the whole catalog with d. Nothing from the previous state
// survives.
func (s *Store) Reset(d seed.Data) {
	categories := models.CloneCategories(d.Categories)
	if categories == nil {
		categories = []models.Category{}
	}
	tools := models.CloneTools(d.Tools)
	if tools == nil {
		tools = []models.Tool{}
	}

	s.mu.Lock()
	s.categories = categories
	s.tools = tools
	s.mu.Unlock()

	s.logger.Info("catalog reset",
		"categories", models.CountCategories(categories),
		"tools", len(tools),
	)
}

// Snapshot returns a copy of the whole catalog.
func (s *Store) Snapshot() seed.Data {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return seed.Data{
		Categories: models.CloneCategories(s.categories),
		Tools:      models.CloneTools(s.tools),
	}
}

// Stats summarizes the catalog.
type Stats struct {
	Categories  int `json:"categories"`
	Tools       int `json:"tools"`
	Favorites   int `json:"favorites"`
	TotalClicks int `json:"totalClicks"`
}

// Stats counts categories at every depth, tools, favorites and clicks.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{
		Categories: models.CountCategories(s.categories),
		Tools:      len(s.tools),
	}
	for i := range s.tools {
		if s.tools[i].IsFavorite() {
			st.Favorites++
		}
		st.TotalClicks += s.tools[i].ClickCount
	}
	return st
}
