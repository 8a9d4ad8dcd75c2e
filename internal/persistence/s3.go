package persistence

import (
	"context"
	"errors"
	"time"

	"stylepins/internal/storage"
)

var (
	_ Backend = (*S3Backend)(nil)
	_ Stamper = (*S3Backend)(nil)
)

// S3Backend keeps each record as the object <key>.json in one bucket.
type S3Backend struct {
	client *storage.Client
}

// NewS3Backend wraps an object storage client.
func NewS3Backend(client *storage.Client) *S3Backend {
	return &S3Backend{client: client}
}

func (b *S3Backend) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := b.client.Download(ctx, key+".json")
	if errors.Is(err, storage.ErrObjectNotFound) {
		return nil, ErrRecordNotFound
	}
	return data, err
}

func (b *S3Backend) Write(ctx context.Context, key string, data []byte) error {
	return b.client.Upload(ctx, key+".json", "application/json", data)
}

func (b *S3Backend) UpdatedAt(ctx context.Context, key string) (time.Time, bool, error) {
	ts, err := b.client.LastModified(ctx, key+".json")
	if errors.Is(err, storage.ErrObjectNotFound) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	return ts, true, nil
}

func (b *S3Backend) Close() error { return nil }
