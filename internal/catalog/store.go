// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog owns the live catalog. Readers get immutable snapshots;
// every mutation builds a new snapshot, persists it and only then makes it
// visible, so a failed write leaves the catalog exactly as it was.
package catalog

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"stylepins/internal/auth"
	"stylepins/internal/filter"
	"stylepins/internal/ident"
	"stylepins/internal/models"
)

// Persister loads and saves whole catalog documents.
// persistence.Adapter is the production implementation.
type Persister interface {
	Load(ctx context.Context) (*models.CatalogState, error)
	Persist(ctx context.Context, state *models.CatalogState) error
	Key() string
}

// fallbackError is implemented by load errors that still offer a catalog to
// browse, such as persistence.UnavailableError.
type fallbackError interface {
	error
	Fallback() *models.CatalogState
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used for image dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDs sets the generator for entity ids and product codes.
func WithIDs(g *ident.Generator) Option {
	return func(s *Store) { s.ids = g }
}

// WithPasswordHasher stores new passwords in hashed form.
func WithPasswordHasher(h auth.Hasher) Option {
	return func(s *Store) { s.hasher = h }
}

// Store is the single owner of the catalog state.
type Store struct {
	mu        sync.Mutex
	state     atomic.Pointer[models.CatalogState]
	persister Persister

	// loadErr is set while the Store serves a fallback catalog. Such a
	// catalog is read-only. Guarded by mu.
	loadErr error

	now    func() time.Time
	ids    *ident.Generator
	hasher auth.Hasher
}

// Open hydrates a Store from the persister. When the record cannot be read
// but the persister offers a fallback catalog, the Store serves it for
// reading and refuses mutations until a later load succeeds.
func Open(ctx context.Context, p Persister, opts ...Option) (*Store, error) {
	state, err := p.Load(ctx)
	if err != nil {
		var fb fallbackError
		if !errors.As(err, &fb) || fb.Fallback() == nil {
			return nil, &StorageError{Op: "open", Key: p.Key(), Err: err}
		}
		slog.Warn("serving fallback catalog read-only", "key", p.Key(), "error", err)
		s := New(fb.Fallback(), p, opts...)
		s.loadErr = err
		return s, nil
	}
	return New(state, p, opts...), nil
}

// New wraps an already loaded state. The Store takes ownership of state.
func New(state *models.CatalogState, p Persister, opts ...Option) *Store {
	s := &Store{
		persister: p,
		now:       time.Now,
		ids:       ident.Default,
	}
	for _, opt := range opts {
		opt(s)
	}
	state.Normalize()
	s.state.Store(state)
	return s
}

// State returns the current snapshot. Callers must not modify it.
func (s *Store) State() *models.CatalogState {
	return s.state.Load()
}

// Categories returns every category in stored order.
func (s *Store) Categories() []models.Category {
	return slices.Clone(s.State().Categories)
}

// RootCategories returns the top-level categories.
func (s *Store) RootCategories() []models.Category {
	return filter.RootCategories(s.State())
}

// SubCategories returns the children of parentID.
func (s *Store) SubCategories(parentID string) []models.Category {
	return filter.SubCategories(s.State(), parentID)
}

// SubCategoryCount returns how many children parentID has.
func (s *Store) SubCategoryCount(parentID string) int {
	return filter.SubCategoryCount(s.State(), parentID)
}

// Category looks up a category by id.
func (s *Store) Category(id string) (models.Category, error) {
	c, ok := s.State().FindCategory(id)
	if !ok {
		return models.Category{}, &NotFoundError{Resource: "category", ID: id}
	}
	return c, nil
}

// Images returns every image, most recent first.
func (s *Store) Images() []models.Image {
	return slices.Clone(s.State().Images)
}

// Image looks up an image by id.
func (s *Store) Image(id string) (models.Image, error) {
	state := s.State()
	i := state.FindImage(id)
	if i < 0 {
		return models.Image{}, &NotFoundError{Resource: "image", ID: id}
	}
	return state.Images[i], nil
}

// Filter returns the images for a category selection. Either argument
// may be filter.All.
func (s *Store) Filter(categoryID, subCategoryID string) []models.Image {
	return filter.Images(s.State(), categoryID, subCategoryID)
}

// ReadOnly reports whether the Store is serving a fallback catalog because
// the stored record could not be read.
func (s *Store) ReadOnly() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr != nil
}

// Authenticate checks admin credentials against the current settings.
func (s *Store) Authenticate(username, password string) bool {
	return auth.Authenticate(username, password, s.State().Settings)
}

// mutate runs apply on a private copy of the state and publishes the copy
// once it is persisted. apply reports whether it changed anything; an
// unchanged copy is dropped without a write.
func (s *Store) mutate(ctx context.Context, op string, apply func(next *models.CatalogState) (bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loadErr != nil {
		if err := s.reload(ctx); err != nil {
			return &StorageError{Op: op, Key: s.persister.Key(), Err: err}
		}
	}

	prev := s.state.Load()
	next := prev.Clone()
	changed, err := apply(next)
	if err != nil {
		return err
	}
	if !changed {
		slog.Debug("catalog unchanged", "op", op)
		return nil
	}
	if err := validate(prev, next); err != nil {
		return err
	}

	// Mutations run to completion once started.
	if err := s.persister.Persist(context.WithoutCancel(ctx), next); err != nil {
		slog.Error("failed to persist catalog", "op", op, "key", s.persister.Key(), "error", err)
		return &StorageError{Op: op, Key: s.persister.Key(), Err: err}
	}

	s.state.Store(next)
	slog.Debug("catalog updated", "op", op)
	return nil
}

// reload retries a failed initial load and publishes the stored catalog in
// place of the fallback. Callers hold mu.
func (s *Store) reload(ctx context.Context) error {
	state, err := s.persister.Load(context.WithoutCancel(ctx))
	if err != nil {
		return err
	}
	state.Normalize()
	s.state.Store(state)
	s.loadErr = nil
	slog.Info("catalog record readable again", "key", s.persister.Key())
	return nil
}

// validate rejects a mutation that breaks a catalog invariant: unique ids
// and no category nested below a sub-category. Violations already present
// in prev, typically from an imported record, do not block unrelated
// changes.
func validate(prev, next *models.CatalogState) error {
	known := make(map[string]struct{})
	for _, v := range violations(prev) {
		known[v.Error()] = struct{}{}
	}
	for _, v := range violations(next) {
		if _, ok := known[v.Error()]; !ok {
			return v
		}
	}
	return nil
}

func violations(state *models.CatalogState) []*ValidationError {
	var found []*ValidationError

	seen := make(map[string]struct{}, len(state.Categories))
	for _, c := range state.Categories {
		if _, dup := seen[c.ID]; dup {
			found = append(found, &ValidationError{Field: "category", Message: "duplicate id " + c.ID})
		}
		seen[c.ID] = struct{}{}
	}
	for _, c := range state.Categories {
		if c.IsRoot() {
			continue
		}
		parent, ok := state.FindCategory(c.ParentID)
		if ok && !parent.IsRoot() {
			found = append(found, &ValidationError{Field: "parentId", Message: "category " + c.ID + " is nested below a sub-category"})
		}
	}

	imageIDs := make(map[string]struct{}, len(state.Images))
	for _, img := range state.Images {
		if _, dup := imageIDs[img.ID]; dup {
			found = append(found, &ValidationError{Field: "image", Message: "duplicate id " + img.ID})
		}
		imageIDs[img.ID] = struct{}{}
	}
	return found
}
