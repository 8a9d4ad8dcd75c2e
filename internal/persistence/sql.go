package persistence

import (
	"context"
	"database/sql"
	"time"

	"stylepins/internal/store"
)

var (
	_ Backend = (*SQLBackend)(nil)
	_ Stamper = (*SQLBackend)(nil)
)

// SQLBackend keeps records in the catalog_records table (SQLite or
// PostgreSQL). The database must already be migrated.
type SQLBackend struct {
	db      *sql.DB
	records *store.RecordStore
}

// NewSQLBackend wraps db. Close closes db.
func NewSQLBackend(db *sql.DB) *SQLBackend {
	return &SQLBackend{db: db, records: store.NewRecordStore(db)}
}

func (b *SQLBackend) Read(ctx context.Context, key string) ([]byte, error) {
	doc, ok, err := b.records.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRecordNotFound
	}
	return []byte(doc), nil
}

func (b *SQLBackend) Write(ctx context.Context, key string, data []byte) error {
	return b.records.Set(ctx, key, string(data))
}

func (b *SQLBackend) UpdatedAt(ctx context.Context, key string) (time.Time, bool, error) {
	return b.records.UpdatedAt(ctx, key)
}

func (b *SQLBackend) Close() error {
	return b.db.Close()
}
