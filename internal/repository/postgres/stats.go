package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"spartans-cricket-backend/internal/domain"
	"spartans-cricket-backend/internal/repository"
)

type clubStatsRepository struct {
	db *sql.DB
}

func NewClubStatsRepository(db *sql.DB) repository.ClubStatsRepository {
	return &clubStatsRepository{db: db}
}

func (r *clubStatsRepository) Get(ctx context.Context) (*domain.ClubStats, error) {
	s := &domain.ClubStats{}
	query := `SELECT matches_won, active_players, championships FROM club_stats WHERE id = 1`
	err := r.db.QueryRowContext(ctx, query).Scan(&s.MatchesWon, &s.ActivePlayers, &s.Championships)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: club stats", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get club stats: %w", err)
	}
	return s, nil
}

func (r *clubStatsRepository) Upsert(ctx context.Context, s *domain.ClubStats) error {
	query := `INSERT INTO club_stats (id, matches_won, active_players, championships) VALUES (1, $1, $2, $3)
	          ON CONFLICT (id) DO UPDATE SET matches_won = EXCLUDED.matches_won,
	          active_players = EXCLUDED.active_players, championships = EXCLUDED.championships`
	if _, err := r.db.ExecContext(ctx, query, s.MatchesWon, s.ActivePlayers, s.Championships); err != nil {
		return writeErr(err, "save", "club stats")
	}
	return nil
}
