package persistence

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

var (
	_ Backend = (*FileBackend)(nil)
	_ Stamper = (*FileBackend)(nil)
)

// FileBackend keeps each record in <dir>/<key>.json. Writes go to a temp
// file in the same directory which is synced and then renamed over the
// record, so a crash leaves either the old or the new document.
type FileBackend struct {
	dir string
}

// NewFileBackend returns a backend rooted at dir. The directory is created
// on first write.
func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

// Path returns the file that holds key.
func (b *FileBackend) Path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

func (b *FileBackend) Read(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(b.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read record file: %w", err)
	}
	return data, nil
}

func (b *FileBackend) Write(_ context.Context, key string, data []byte) error {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return fmt.Errorf("create record dir: %w", err)
	}

	tmp, err := os.CreateTemp(b.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp record: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp record: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp record: %w", err)
	}
	if err := os.Rename(tmpName, b.Path(key)); err != nil {
		return fmt.Errorf("replace record file: %w", err)
	}
	return nil
}

// UpdatedAt returns the modification time of the record file.
func (b *FileBackend) UpdatedAt(_ context.Context, key string) (time.Time, bool, error) {
	info, err := os.Stat(b.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("stat record file: %w", err)
	}
	return info.ModTime(), true, nil
}

func (b *FileBackend) Close() error { return nil }
