// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides database access for the durable catalog record.
// The whole catalog lives in one row of catalog_records, addressed by a
// reserved key, and is replaced in a single statement on every save.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// RecordStore reads and writes catalog documents in the database.
type RecordStore struct {
	db *sql.DB
}

// NewRecordStore returns a new RecordStore backed by the given database.
func NewRecordStore(db *sql.DB) *RecordStore {
	return &RecordStore{db: db}
}

// Get returns the document stored under key. The boolean is false when no
// row exists (not an error).
func (s *RecordStore) Get(ctx context.Context, key string) (string, bool, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, `SELECT document FROM catalog_records WHERE key = $1`, key).Scan(&doc)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get record %s: %w", key, err)
	}
	return doc, true, nil
}

// Set upserts the document under key. The row is replaced as a whole.
func (s *RecordStore) Set(ctx context.Context, key, document string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO catalog_records (key, document, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key)
		DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at`,
		key, document, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set record %s: %w", key, err)
	}
	return nil
}

// UpdatedAt returns when the record under key was last written.
func (s *RecordStore) UpdatedAt(ctx context.Context, key string) (time.Time, bool, error) {
	var ts time.Time
	err := s.db.QueryRowContext(ctx, `SELECT updated_at FROM catalog_records WHERE key = $1`, key).Scan(&ts)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("record updated_at %s: %w", key, err)
	}
	return ts, true, nil
}
