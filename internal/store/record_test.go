// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseRecordStore(t *testing.T, db *sql.DB) {
	t.Helper()
	s := NewRecordStore(db)
	ctx := context.Background()
	key := "test-record-store"
	t.Cleanup(func() { cleanRecords(db, key) })

	// Not found case.
	doc, ok, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, doc)

	_, ok, err = s.UpdatedAt(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	// Insert.
	require.NoError(t, s.Set(ctx, key, `{"v":1}`))
	doc, ok, err = s.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"v":1}`, doc)

	// Replace.
	require.NoError(t, s.Set(ctx, key, `{"v":2}`))
	doc, _, err = s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `{"v":2}`, doc)

	ts, ok, err := s.UpdatedAt(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.WithinDuration(t, time.Now(), ts, time.Hour)

	var rows int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM catalog_records WHERE key = $1`, key).Scan(&rows))
	assert.Equal(t, 1, rows, "upsert must keep a single row per key")
}

func TestRecordStoreSQLite(t *testing.T) {
	exerciseRecordStore(t, sqliteDB(t))
}

func TestRecordStorePostgres(t *testing.T) {
	exerciseRecordStore(t, postgresDB(t))
}

func TestRecordStoreKeysAreIndependent(t *testing.T) {
	db := sqliteDB(t)
	s := NewRecordStore(db)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", "one"))
	require.NoError(t, s.Set(ctx, "b", "two"))

	a, _, err := s.Get(ctx, "a")
	require.NoError(t, err)
	b, _, err := s.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "one", a)
	assert.Equal(t, "two", b)
}

func TestRecordStoreClosedDB(t *testing.T) {
	db := sqliteDB(t)
	s := NewRecordStore(db)
	db.Close()

	_, _, err := s.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.Error(t, s.Set(context.Background(), "k", "v"))
}
