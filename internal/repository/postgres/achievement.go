package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"spartans-cricket-backend/internal/domain"
	"spartans-cricket-backend/internal/repository"
)

type achievementRepository struct {
	db *sql.DB
}

func NewAchievementRepository(db *sql.DB) repository.AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) Create(ctx context.Context, a *domain.Achievement) error {
	query := `INSERT INTO achievements (title, achievement_year, type) VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, a.Title, a.AchievementYear, a.Type).Scan(&a.ID); err != nil {
		return writeErr(err, "create", "achievement")
	}
	return nil
}

func (r *achievementRepository) GetByID(ctx context.Context, id int64) (*domain.Achievement, error) {
	a := &domain.Achievement{}
	query := `SELECT id, title, achievement_year, type FROM achievements WHERE id = $1`
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Title, &a.AchievementYear, &a.Type); err != nil {
		return nil, lookupErr(err, "achievement", id)
	}
	return a, nil
}

func (r *achievementRepository) Update(ctx context.Context, a *domain.Achievement) error {
	query := `UPDATE achievements SET title = $1, achievement_year = $2, type = $3 WHERE id = $4 RETURNING id`
	err := r.db.QueryRowContext(ctx, query, a.Title, a.AchievementYear, a.Type, a.ID).Scan(&a.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return lookupErr(err, "achievement", a.ID)
	}
	if err != nil {
		return writeErr(err, "update", "achievement")
	}
	return nil
}

func (r *achievementRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "achievements", "achievement", id)
}

func (r *achievementRepository) List(ctx context.Context) ([]domain.Achievement, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, achievement_year, type FROM achievements ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	defer rows.Close()

	achievements := []domain.Achievement{}
	for rows.Next() {
		var a domain.Achievement
		if err := rows.Scan(&a.ID, &a.Title, &a.AchievementYear, &a.Type); err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}
