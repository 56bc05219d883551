package service

import (
	"context"

	"spartans-cricket-backend/internal/logger"
	"spartans-cricket-backend/internal/storage"
)

// imageUploader validates uploads and writes them to the image store.
type imageUploader struct {
	store storage.ImageStore
	cfg   storage.Config
}

// save returns the new storage key, or "" when there is no image.
func (u *imageUploader) save(ctx context.Context, img *storage.ImageUpload) (string, error) {
	if img == nil || img.Reader == nil {
		return "", nil
	}
	if err := u.cfg.Validate(img); err != nil {
		return "", err
	}
	key := storage.NewKey(img.ContentType)
	logger.ExternalServiceCall(ctx, "image-store", "Save", "key", key, "size", img.Size)
	err := u.store.Save(ctx, key, img.Reader)
	logger.ExternalServiceResult(ctx, "image-store", "Save", err, "key", key)
	if err != nil {
		return "", err
	}
	return key, nil
}

// discard removes an image that is no longer referenced. Failures only leave an orphan file.
func (u *imageUploader) discard(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := u.store.Delete(ctx, key); err != nil {
		logger.WarnContext(ctx, "Failed to delete image", "key", key, "error", err)
	}
}
