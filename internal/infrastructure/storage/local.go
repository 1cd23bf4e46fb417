package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage stores uploads in a directory on disk, served back by the
// API at /uploads/<filename>.
type LocalStorage struct {
	dir     string
	baseURL string
}

// NewLocalStorage creates the uploads directory when missing. baseURL is
// the externally reachable origin of the API (no trailing slash).
func NewLocalStorage(dir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}

	return &LocalStorage{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// path rejects names that escape the uploads directory.
func (s *LocalStorage) path(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) {
		return "", fmt.Errorf("invalid filename %q", filename)
	}
	return filepath.Join(s.dir, filename), nil
}

func (s *LocalStorage) Save(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	p, err := s.path(filename)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(p, data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return s.baseURL + "/uploads/" + filename, nil
}

func (s *LocalStorage) Open(ctx context.Context, filename string) ([]byte, string, error) {
	p, err := s.path(filename)
	if err != nil {
		return nil, "", ErrFileNotFound
	}

	data, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", ErrFileNotFound
		}
		return nil, "", fmt.Errorf("read upload: %w", err)
	}

	return data, contentTypeFor(filename), nil
}

func (s *LocalStorage) Delete(ctx context.Context, filename string) error {
	p, err := s.path(filename)
	if err != nil {
		return ErrFileNotFound
	}

	if err := os.Remove(p); err != nil {
		if os.IsNotExist(err) {
			return ErrFileNotFound
		}
		return fmt.Errorf("delete upload: %w", err)
	}

	return nil
}

func (s *LocalStorage) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}

	return names, nil
}
