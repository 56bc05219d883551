package storage

import (
	"fmt"
	"io"
	"mime"
	"slices"
	"strings"

	"spartans-cricket-backend/internal/domain"

	"github.com/google/uuid"
)

// Config holds storage configuration
type Config struct {
	UploadDir    string   // Local directory for uploads (e.g., "./uploads")
	BaseURL      string   // Server base URL used in public image links
	MaxBytes     int64    // Largest accepted upload
	AllowedTypes []string // Accepted MIME types
}

// ImageUpload is an image received with a multipart form.
type ImageUpload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

// Validate checks the upload against the configured type and size limits.
func (c Config) Validate(u *ImageUpload) error {
	if u == nil {
		return nil
	}
	ct, _, err := mime.ParseMediaType(u.ContentType)
	if err != nil || !slices.Contains(c.AllowedTypes, ct) {
		return fmt.Errorf("%w: unsupported image type %q", domain.ErrInvalidInput, u.ContentType)
	}
	if c.MaxBytes > 0 && u.Size > c.MaxBytes {
		return fmt.Errorf("%w: image larger than %d bytes", domain.ErrInvalidInput, c.MaxBytes)
	}
	u.ContentType = ct
	return nil
}

// NewKey returns a fresh storage key with an extension matching the content type.
func NewKey(contentType string) string {
	ext := ".bin"
	switch strings.ToLower(contentType) {
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	case "image/gif":
		ext = ".gif"
	case "image/webp":
		ext = ".webp"
	}
	return uuid.NewString() + ext
}

// ContentTypeForKey infers the MIME type from a key's extension.
func ContentTypeForKey(key string) string {
	switch {
	case strings.HasSuffix(key, ".jpg"), strings.HasSuffix(key, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(key, ".png"):
		return "image/png"
	case strings.HasSuffix(key, ".gif"):
		return "image/gif"
	case strings.HasSuffix(key, ".webp"):
		return "image/webp"
	}
	return "application/octet-stream"
}
