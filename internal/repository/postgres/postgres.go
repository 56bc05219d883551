package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	"spartans-cricket-backend/internal/domain"
	"spartans-cricket-backend/internal/logger"
	"spartans-cricket-backend/internal/repository"

	"github.com/lib/pq"
)

//go:embed schema.sql
var schemaSQL string

type Store struct {
	db *sql.DB
	repository.ApplicantRepository
	repository.PlayerRepository
	repository.FixtureRepository
	repository.AchievementRepository
	repository.GalleryRepository
	repository.ClubStatsRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		ApplicantRepository:   NewApplicantRepository(db),
		PlayerRepository:      NewPlayerRepository(db),
		FixtureRepository:     NewFixtureRepository(db),
		AchievementRepository: NewAchievementRepository(db),
		GalleryRepository:     NewGalleryRepository(db),
		ClubStatsRepository:   NewClubStatsRepository(db),
	}
}

// EnsureSchema creates any missing tables and indexes. Every statement is idempotent.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	logger.DatabaseCall(ctx, "EnsureSchema")
	_, err := db.ExecContext(ctx, schemaSQL)
	logger.DatabaseResult(ctx, "EnsureSchema", 0, err)
	if err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// lookupErr maps a missing row to domain.ErrNotFound.
func lookupErr(err error, entity string, id int64) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s %d", domain.ErrNotFound, entity, id)
	}
	return fmt.Errorf("failed to get %s %d: %w", entity, id, err)
}

// writeErr maps constraint violations raised by the schema to domain.ErrInvalidInput.
func writeErr(err error, op, entity string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "check_violation", "not_null_violation", "string_data_right_truncation":
			return fmt.Errorf("%w: %s %s: %s", domain.ErrInvalidInput, op, entity, pqErr.Message)
		}
	}
	return fmt.Errorf("failed to %s %s: %w", op, entity, err)
}

// deleteByID removes one row and reports ErrNotFound when nothing matched.
func deleteByID(ctx context.Context, db *sql.DB, table, entity string, id int64) error {
	logger.DatabaseCall(ctx, "Delete", "table", table, "id", id)
	res, err := db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		logger.DatabaseResult(ctx, "Delete", 0, err, "table", table)
		return fmt.Errorf("failed to delete %s %d: %w", entity, id, err)
	}
	n, err := res.RowsAffected()
	logger.DatabaseResult(ctx, "Delete", n, err, "table", table)
	if err != nil {
		return fmt.Errorf("failed to delete %s %d: %w", entity, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %d", domain.ErrNotFound, entity, id)
	}
	return nil
}
