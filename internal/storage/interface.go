package storage

import (
	"context"
	"errors"
	"io"
)

var ErrInvalidKey = errors.New("invalid storage key")

// ImageStore holds uploaded image bytes under opaque keys.
type ImageStore interface {
	// Save writes the whole reader under key, replacing any existing file.
	Save(ctx context.Context, key string, r io.Reader) error

	// Open returns the stored bytes. A missing key yields domain.ErrNotFound.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the file; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// URL is the public address the stored image is served from.
	URL(key string) string
}
