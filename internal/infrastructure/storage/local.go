package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/johnquangdev/voice-transcriber/internal/domain/entities"
)

// LocalStore keeps uploaded audio on the local disk. It is used when no
// object storage is configured.
type LocalStore struct {
	dir string
}

// NewLocalStore stores files under dir, creating it if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(filepath.Join(dir, strings.TrimSuffix(audioPrefix, "/")), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Save(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error) {
	handle := NewHandle(filename)

	f, err := os.Create(s.path(handle))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return handle, nil
}

func (s *LocalStore) Open(ctx context.Context, handle string) (io.ReadCloser, error) {
	if !ValidHandle(handle) {
		return nil, entities.InvalidInput("malformed file handle")
	}
	f, err := os.Open(s.path(handle))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", handle, err)
	}
	return f, nil
}

func (s *LocalStore) path(handle string) string {
	return filepath.Join(s.dir, filepath.FromSlash(handle))
}
