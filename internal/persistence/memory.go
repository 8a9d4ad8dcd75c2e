package persistence

import (
	"context"
	"sync"
	"time"
)

var (
	_ Backend = (*MemoryBackend)(nil)
	_ Stamper = (*MemoryBackend)(nil)
)

// MemoryBackend keeps records in process memory. It is meant for tests and
// throwaway runs; the injectable errors simulate an unavailable medium.
type MemoryBackend struct {
	mu      sync.Mutex
	records map[string][]byte
	stamps  map[string]time.Time
	writes  int

	// ReadErr, when set, is returned by every Read.
	ReadErr error
	// WriteErr, when set, is returned by every Write and nothing is stored.
	WriteErr error
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		records: make(map[string][]byte),
		stamps:  make(map[string]time.Time),
	}
}

func (b *MemoryBackend) Read(_ context.Context, key string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ReadErr != nil {
		return nil, b.ReadErr
	}
	data, ok := b.records[key]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return append([]byte(nil), data...), nil
}

func (b *MemoryBackend) Write(_ context.Context, key string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.WriteErr != nil {
		return b.WriteErr
	}
	b.records[key] = append([]byte(nil), data...)
	b.stamps[key] = time.Now()
	b.writes++
	return nil
}

// UpdatedAt returns the time of the last Write under key. Records stored
// with Put have no timestamp.
func (b *MemoryBackend) UpdatedAt(_ context.Context, key string) (time.Time, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ts, ok := b.stamps[key]
	return ts, ok, nil
}

// Put stores raw bytes under key without counting a write.
func (b *MemoryBackend) Put(key string, data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.records[key] = append([]byte(nil), data...)
}

// Writes returns how many successful writes the backend has seen.
func (b *MemoryBackend) Writes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writes
}

func (b *MemoryBackend) Close() error { return nil }
