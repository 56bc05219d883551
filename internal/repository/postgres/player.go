package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"spartans-cricket-backend/internal/domain"
	"spartans-cricket-backend/internal/logger"
	"spartans-cricket-backend/internal/repository"
)

const playerColumns = `id, name, role, batting_style, bowling_style, matches, runs, wickets, image_url, image_key, image_content_type, approved, legal_consent, created_at`

type playerRepository struct {
	db *sql.DB
}

func NewPlayerRepository(db *sql.DB) repository.PlayerRepository {
	return &playerRepository{db: db}
}

func scanPlayer(row rowScanner) (*domain.Player, error) {
	p := &domain.Player{}
	err := row.Scan(&p.ID, &p.Name, &p.Role, &p.BattingStyle, &p.BowlingStyle, &p.Matches, &p.Runs, &p.Wickets,
		&p.ImageURL, &p.ImageKey, &p.ImageContentType, &p.Approved, &p.LegalConsent, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create leaves the approved column to its default so new players are never visible.
func (r *playerRepository) Create(ctx context.Context, p *domain.Player) error {
	p.Approved = domain.Unapproved
	p.CreatedAt = time.Now().UTC()
	query := `INSERT INTO players (name, role, batting_style, bowling_style, matches, runs, wickets, image_url, image_key, image_content_type, legal_consent, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	logger.DatabaseCall(ctx, "CreatePlayer", "name", p.Name)
	err := r.db.QueryRowContext(ctx, query, p.Name, p.Role, p.BattingStyle, p.BowlingStyle, p.Matches, p.Runs, p.Wickets,
		p.ImageURL, p.ImageKey, p.ImageContentType, p.LegalConsent, p.CreatedAt).Scan(&p.ID)
	logger.DatabaseResult(ctx, "CreatePlayer", 1, err, "id", p.ID)
	if err != nil {
		return writeErr(err, "create", "player")
	}
	return nil
}

func (r *playerRepository) GetByID(ctx context.Context, id int64) (*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`
	p, err := scanPlayer(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, lookupErr(err, "player", id)
	}
	return p, nil
}

func (r *playerRepository) Update(ctx context.Context, p *domain.Player) error {
	query := `UPDATE players SET name = $1, role = $2, batting_style = $3, bowling_style = $4, matches = $5, runs = $6, wickets = $7,
	          image_url = $8, image_key = $9, image_content_type = $10
	          WHERE id = $11 RETURNING approved, legal_consent, created_at`
	logger.DatabaseCall(ctx, "UpdatePlayer", "id", p.ID)
	err := r.db.QueryRowContext(ctx, query, p.Name, p.Role, p.BattingStyle, p.BowlingStyle, p.Matches, p.Runs, p.Wickets,
		p.ImageURL, p.ImageKey, p.ImageContentType, p.ID).Scan(&p.Approved, &p.LegalConsent, &p.CreatedAt)
	logger.DatabaseResult(ctx, "UpdatePlayer", 1, err, "id", p.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return lookupErr(err, "player", p.ID)
		}
		return writeErr(err, "update", "player")
	}
	return nil
}

func (r *playerRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "players", "player", id)
}

func (r *playerRepository) List(ctx context.Context, approvedOnly bool) ([]domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players`
	if approvedOnly {
		query += ` WHERE approved = TRUE`
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	players := []domain.Player{}
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

func (r *playerRepository) SetApproved(ctx context.Context, id int64) (*domain.Player, error) {
	logger.DatabaseCall(ctx, "ApprovePlayer", "id", id)
	query := `UPDATE players SET approved = TRUE WHERE id = $1 RETURNING ` + playerColumns
	p, err := scanPlayer(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		logger.DatabaseResult(ctx, "ApprovePlayer", 0, err)
		return nil, lookupErr(err, "player", id)
	}
	logger.DatabaseResult(ctx, "ApprovePlayer", 1, nil)
	return p, nil
}

func (r *playerRepository) CountUnapproved(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM players WHERE approved = FALSE`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unapproved players: %w", err)
	}
	return count, nil
}
