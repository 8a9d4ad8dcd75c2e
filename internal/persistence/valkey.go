package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var _ Backend = (*ValkeyBackend)(nil)

// ValkeyBackend keeps records as plain Valkey strings with no expiry.
// SET replaces the value atomically.
type ValkeyBackend struct {
	client *redis.Client
}

// NewValkeyBackend wraps client. Close closes client.
func NewValkeyBackend(client *redis.Client) *ValkeyBackend {
	return &ValkeyBackend{client: client}
}

func (b *ValkeyBackend) Read(ctx context.Context, key string) ([]byte, error) {
	val, err := b.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("valkey get %s: %w", key, err)
	}
	return val, nil
}

func (b *ValkeyBackend) Write(ctx context.Context, key string, data []byte) error {
	if err := b.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("valkey set %s: %w", key, err)
	}
	return nil
}

func (b *ValkeyBackend) Close() error {
	return b.client.Close()
}
