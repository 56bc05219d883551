package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"spartans-cricket-backend/internal/domain"
	"spartans-cricket-backend/internal/logger"
	"spartans-cricket-backend/internal/repository"
	"spartans-cricket-backend/internal/security"
	"spartans-cricket-backend/internal/storage"
)

type galleryService struct {
	items  repository.GalleryRepository
	images *imageUploader
}

func NewGalleryService(items repository.GalleryRepository, store storage.ImageStore, storageCfg storage.Config) GalleryService {
	return &galleryService{items: items, images: &imageUploader{store: store, cfg: storageCfg}}
}

func GalleryImagePath(id int64) string {
	return fmt.Sprintf("/api/gallery/%d/image", id)
}

func (s *galleryService) ListGallery(ctx context.Context, category string) ([]domain.GalleryItem, error) {
	return s.items.List(ctx, strings.TrimSpace(category))
}

func (s *galleryService) AddGalleryItem(ctx context.Context, item *domain.GalleryItem, image *storage.ImageUpload) (*domain.GalleryItem, error) {
	logger.EnterMethod(ctx, "GalleryService.AddGalleryItem")
	if err := security.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	item.Category = strings.TrimSpace(item.Category)
	item.SubCategory = strings.TrimSpace(item.SubCategory)
	if item.Category == "" {
		return nil, fmt.Errorf("%w: category is required", domain.ErrInvalidInput)
	}
	if item.SubCategory == "" {
		item.SubCategory = "General"
	}
	if image == nil || image.Reader == nil {
		return nil, fmt.Errorf("%w: image is required", domain.ErrInvalidInput)
	}

	key, err := s.images.save(ctx, image)
	if err != nil {
		return nil, err
	}
	item.ImageKey = key
	item.ImageContentType = image.ContentType
	item.ImageURL = ""

	if err := s.items.Create(ctx, item); err != nil {
		s.images.discard(ctx, key)
		return nil, err
	}

	// The public URL embeds the id, so it is only known after the insert.
	item.ImageURL = GalleryImagePath(item.ID)
	if err := s.items.SetImageURL(ctx, item.ID, item.ImageURL); err != nil {
		logger.ExitMethodWithError(ctx, "GalleryService.AddGalleryItem", err)
		return nil, err
	}
	logger.ExitMethod(ctx, "GalleryService.AddGalleryItem", "id", item.ID)
	return item, nil
}

func (s *galleryService) DeleteGalleryItem(ctx context.Context, id int64) error {
	if err := security.RequireAdmin(ctx); err != nil {
		return err
	}
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.items.Delete(ctx, id); err != nil {
		return err
	}
	s.images.discard(ctx, item.ImageKey)
	return nil
}

func (s *galleryService) OpenGalleryImage(ctx context.Context, id int64) (io.ReadCloser, string, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if item.ImageKey == "" {
		return nil, "", fmt.Errorf("%w: gallery item %d has no image", domain.ErrNotFound, id)
	}
	rc, err := s.images.store.Open(ctx, item.ImageKey)
	if err != nil {
		return nil, "", err
	}
	contentType := item.ImageContentType
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return rc, contentType, nil
}
