package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"spartans-cricket-backend/internal/domain"
	"spartans-cricket-backend/internal/repository"
)

type fixtureRepository struct {
	db *sql.DB
}

func NewFixtureRepository(db *sql.DB) repository.FixtureRepository {
	return &fixtureRepository{db: db}
}

func (r *fixtureRepository) Create(ctx context.Context, m *domain.MatchFixture) error {
	query := `INSERT INTO match_fixtures (opponent, match_date, venue, status, result) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, m.Opponent, m.MatchDate, m.Venue, m.Status, m.Result).Scan(&m.ID); err != nil {
		return writeErr(err, "create", "match")
	}
	return nil
}

func (r *fixtureRepository) GetByID(ctx context.Context, id int64) (*domain.MatchFixture, error) {
	m := &domain.MatchFixture{}
	query := `SELECT id, opponent, match_date, venue, status, result FROM match_fixtures WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Opponent, &m.MatchDate, &m.Venue, &m.Status, &m.Result)
	if err != nil {
		return nil, lookupErr(err, "match", id)
	}
	return m, nil
}

func (r *fixtureRepository) Update(ctx context.Context, m *domain.MatchFixture) error {
	query := `UPDATE match_fixtures SET opponent = $1, match_date = $2, venue = $3, status = $4, result = $5 WHERE id = $6 RETURNING id`
	err := r.db.QueryRowContext(ctx, query, m.Opponent, m.MatchDate, m.Venue, m.Status, m.Result, m.ID).Scan(&m.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return lookupErr(err, "match", m.ID)
	}
	if err != nil {
		return writeErr(err, "update", "match")
	}
	return nil
}

func (r *fixtureRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "match_fixtures", "match", id)
}

func (r *fixtureRepository) List(ctx context.Context) ([]domain.MatchFixture, error) {
	query := `SELECT id, opponent, match_date, venue, status, result FROM match_fixtures ORDER BY match_date, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	matches := []domain.MatchFixture{}
	for rows.Next() {
		var m domain.MatchFixture
		if err := rows.Scan(&m.ID, &m.Opponent, &m.MatchDate, &m.Venue, &m.Status, &m.Result); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
