package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"spartans-cricket-backend/internal/domain"
	"spartans-cricket-backend/internal/logger"
)

// LocalStore implements ImageStore on the local filesystem.
type LocalStore struct {
	baseURL   string
	imagesDir string
}

// NewLocalStore creates the images directory under uploadsDir if needed.
func NewLocalStore(baseURL, uploadsDir string) (*LocalStore, error) {
	imagesDir := filepath.Join(uploadsDir, "images")
	if err := os.MkdirAll(imagesDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}
	return &LocalStore{
		baseURL:   strings.TrimRight(baseURL, "/"),
		imagesDir: imagesDir,
	}, nil
}

// path rejects anything that is not a single plain file name.
func (s *LocalStore) path(key string) (string, error) {
	if key == "" || key == "." || key == ".." || filepath.Base(key) != key || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.imagesDir, key), nil
}

func (s *LocalStore) Save(ctx context.Context, key string, r io.Reader) error {
	fullPath, err := s.path(key)
	if err != nil {
		return err
	}

	// Write to a temp file first so readers never see a partial image.
	tmp, err := os.CreateTemp(s.imagesDir, ".upload-*")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	n, err := io.Copy(tmp, r)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to store file: %w", err)
	}

	logger.DebugContext(ctx, "Image stored", "key", key, "bytes", n)
	return nil
}

func (s *LocalStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	fullPath, err := s.path(key)
	if err != nil {
		return nil, fmt.Errorf("%w: image %q", domain.ErrNotFound, key)
	}
	f, err := os.Open(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: image %q", domain.ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}

func (s *LocalStore) Delete(ctx context.Context, key string) error {
	fullPath, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStore) URL(key string) string {
	return s.baseURL + "/uploads/" + key
}
