package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"spartans-cricket-backend/internal/domain"
	"spartans-cricket-backend/internal/repository"
)

const galleryColumns = `id, category, sub_category, caption, image_url, image_key, image_content_type`

type galleryRepository struct {
	db *sql.DB
}

func NewGalleryRepository(db *sql.DB) repository.GalleryRepository {
	return &galleryRepository{db: db}
}

func scanGalleryItem(row rowScanner) (*domain.GalleryItem, error) {
	g := &domain.GalleryItem{}
	if err := row.Scan(&g.ID, &g.Category, &g.SubCategory, &g.Caption, &g.ImageURL, &g.ImageKey, &g.ImageContentType); err != nil {
		return nil, err
	}
	return g, nil
}

func (r *galleryRepository) Create(ctx context.Context, g *domain.GalleryItem) error {
	query := `INSERT INTO gallery_items (category, sub_category, caption, image_url, image_key, image_content_type)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, g.Category, g.SubCategory, g.Caption, g.ImageURL, g.ImageKey, g.ImageContentType).Scan(&g.ID)
	if err != nil {
		return writeErr(err, "create", "gallery item")
	}
	return nil
}

func (r *galleryRepository) GetByID(ctx context.Context, id int64) (*domain.GalleryItem, error) {
	g, err := scanGalleryItem(r.db.QueryRowContext(ctx, `SELECT `+galleryColumns+` FROM gallery_items WHERE id = $1`, id))
	if err != nil {
		return nil, lookupErr(err, "gallery item", id)
	}
	return g, nil
}

func (r *galleryRepository) SetImageURL(ctx context.Context, id int64, url string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE gallery_items SET image_url = $1 WHERE id = $2`, url, id)
	if err != nil {
		return fmt.Errorf("failed to set gallery image url: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: gallery item %d", domain.ErrNotFound, id)
	}
	return nil
}

func (r *galleryRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "gallery_items", "gallery item", id)
}

// List returns every item, or only one category when category is non-empty.
func (r *galleryRepository) List(ctx context.Context, category string) ([]domain.GalleryItem, error) {
	query := `SELECT ` + galleryColumns + ` FROM gallery_items`
	var args []any
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery: %w", err)
	}
	defer rows.Close()

	items := []domain.GalleryItem{}
	for rows.Next() {
		g, err := scanGalleryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan gallery item: %w", err)
		}
		items = append(items, *g)
	}
	return items, rows.Err()
}
