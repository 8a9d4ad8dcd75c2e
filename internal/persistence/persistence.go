// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package persistence loads and saves the catalog as one document under a
// reserved key. Backends only move bytes; the Adapter owns encoding,
// seeding and the recovery policy.
package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"stylepins/internal/models"
)

// DefaultKey is the reserved key the catalog document is stored under.
const DefaultKey = "stylepins_db"

// ErrRecordNotFound is returned by a Backend when nothing is stored under
// the requested key.
var ErrRecordNotFound = errors.New("record not found")

// UnavailableError reports that the record could not be read. Seed is a
// catalog that may be browsed meanwhile; it must never be written back, or
// it would replace a record that merely could not be reached.
type UnavailableError struct {
	Key  string
	Err  error
	Seed *models.CatalogState
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Key, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// Fallback returns the stand-in catalog.
func (e *UnavailableError) Fallback() *models.CatalogState {
	return e.Seed
}

// Stamper is implemented by backends that know when a record was last
// written.
type Stamper interface {
	UpdatedAt(ctx context.Context, key string) (time.Time, bool, error)
}

// Backend is a durable byte store addressed by key. Write must replace the
// whole value atomically.
type Backend interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Close() error
}

// Adapter reads and writes CatalogState documents through a Backend.
type Adapter struct {
	backend Backend
	key     string
}

// New returns an Adapter storing under key (DefaultKey when empty).
func New(backend Backend, key string) *Adapter {
	if key == "" {
		key = DefaultKey
	}
	return &Adapter{backend: backend, key: key}
}

// Key returns the reserved key this adapter uses.
func (a *Adapter) Key() string {
	return a.key
}

// Load returns the stored catalog. A missing or undecodable record is
// replaced by the seed, which is written back immediately. A backend read
// failure returns an *UnavailableError carrying the seed and writes
// nothing.
func (a *Adapter) Load(ctx context.Context) (*models.CatalogState, error) {
	data, err := a.backend.Read(ctx, a.key)
	switch {
	case errors.Is(err, ErrRecordNotFound):
		slog.Info("no catalog record, seeding defaults", "key", a.key)
		return a.reseed(ctx)
	case err != nil:
		slog.Warn("catalog record unreadable", "key", a.key, "error", err)
		seed, serr := Seed()
		if serr != nil {
			return nil, serr
		}
		return nil, &UnavailableError{Key: a.key, Err: err, Seed: seed}
	}

	state, err := Decode(data)
	if err != nil {
		slog.Warn("catalog record corrupt, reseeding", "key", a.key, "error", err)
		return a.reseed(ctx)
	}

	slog.Debug("catalog loaded", "key", a.key,
		"categories", len(state.Categories), "images", len(state.Images))
	return state, nil
}

// Persist writes the whole state as one atomic replacement of the record.
func (a *Adapter) Persist(ctx context.Context, state *models.CatalogState) error {
	data, err := Encode(state)
	if err != nil {
		return err
	}
	if err := a.backend.Write(ctx, a.key, data); err != nil {
		return fmt.Errorf("persist %s: %w", a.key, err)
	}
	return nil
}

// UpdatedAt reports when the record was last written. The boolean is false
// when the record does not exist or the backend keeps no timestamps.
func (a *Adapter) UpdatedAt(ctx context.Context) (time.Time, bool, error) {
	st, ok := a.backend.(Stamper)
	if !ok {
		return time.Time{}, false, nil
	}
	ts, found, err := st.UpdatedAt(ctx, a.key)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("updated at %s: %w", a.key, err)
	}
	return ts, found, nil
}

// Close releases the backend.
func (a *Adapter) Close() error {
	return a.backend.Close()
}

func (a *Adapter) reseed(ctx context.Context) (*models.CatalogState, error) {
	state, err := Seed()
	if err != nil {
		return nil, err
	}
	if err := a.Persist(ctx, state); err != nil {
		return nil, fmt.Errorf("save seed: %w", err)
	}
	return state, nil
}

// Encode serialises a state to the durable JSON document.
func Encode(state *models.CatalogState) ([]byte, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return data, nil
}

// Decode parses a durable document. Anything that is not a JSON object is
// rejected.
func Decode(data []byte) (*models.CatalogState, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("decode catalog: document is not an object")
	}
	var state models.CatalogState
	if err := json.Unmarshal(trimmed, &state); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	state.Normalize()
	return &state, nil
}
