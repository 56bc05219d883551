package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"spartans-cricket-backend/internal/cache"
	"spartans-cricket-backend/internal/domain"
	"spartans-cricket-backend/internal/repository"
	"spartans-cricket-backend/internal/security"
)

type contentService struct {
	fixtures     repository.FixtureRepository
	achievements repository.AchievementRepository
	stats        repository.ClubStatsRepository
	cache        cache.Cache
}

func NewContentService(
	fixtures repository.FixtureRepository,
	achievements repository.AchievementRepository,
	stats repository.ClubStatsRepository,
	c cache.Cache,
) ContentService {
	return &contentService{fixtures: fixtures, achievements: achievements, stats: stats, cache: c}
}

func validateFixture(m *domain.MatchFixture) error {
	m.Opponent = strings.TrimSpace(m.Opponent)
	if m.Opponent == "" {
		return fmt.Errorf("%w: opponent is required", domain.ErrInvalidInput)
	}
	if m.MatchDate.IsZero() {
		return fmt.Errorf("%w: match date is required", domain.ErrInvalidInput)
	}
	return nil
}

func (s *contentService) ListFixtures(ctx context.Context) ([]domain.MatchFixture, error) {
	return cache.Fetch(ctx, s.cache, cache.KeyFixtures, s.fixtures.List)
}

func (s *contentService) CreateFixture(ctx context.Context, m *domain.MatchFixture) (*domain.MatchFixture, error) {
	if err := security.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	if err := validateFixture(m); err != nil {
		return nil, err
	}
	if err := s.fixtures.Create(ctx, m); err != nil {
		return nil, err
	}
	cache.Invalidate(ctx, s.cache, cache.KeyFixtures)
	return m, nil
}

func (s *contentService) UpdateFixture(ctx context.Context, m *domain.MatchFixture) (*domain.MatchFixture, error) {
	if err := security.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	if err := validateFixture(m); err != nil {
		return nil, err
	}
	if err := s.fixtures.Update(ctx, m); err != nil {
		return nil, err
	}
	cache.Invalidate(ctx, s.cache, cache.KeyFixtures)
	return m, nil
}

func (s *contentService) DeleteFixture(ctx context.Context, id int64) error {
	if err := security.RequireAdmin(ctx); err != nil {
		return err
	}
	if err := s.fixtures.Delete(ctx, id); err != nil {
		return err
	}
	cache.Invalidate(ctx, s.cache, cache.KeyFixtures)
	return nil
}

func validateAchievement(a *domain.Achievement) error {
	a.Title = strings.TrimSpace(a.Title)
	a.Type = domain.AchievementType(strings.ToUpper(strings.TrimSpace(string(a.Type))))
	if a.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if !a.Type.Valid() {
		return fmt.Errorf("%w: unknown achievement type %q", domain.ErrInvalidInput, a.Type)
	}
	return nil
}

func (s *contentService) ListAchievements(ctx context.Context) ([]domain.Achievement, error) {
	return cache.Fetch(ctx, s.cache, cache.KeyAchievements, s.achievements.List)
}

func (s *contentService) CreateAchievement(ctx context.Context, a *domain.Achievement) (*domain.Achievement, error) {
	if err := security.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	if err := validateAchievement(a); err != nil {
		return nil, err
	}
	if err := s.achievements.Create(ctx, a); err != nil {
		return nil, err
	}
	cache.Invalidate(ctx, s.cache, cache.KeyAchievements)
	return a, nil
}

func (s *contentService) UpdateAchievement(ctx context.Context, a *domain.Achievement) (*domain.Achievement, error) {
	if err := security.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	if err := validateAchievement(a); err != nil {
		return nil, err
	}
	if err := s.achievements.Update(ctx, a); err != nil {
		return nil, err
	}
	cache.Invalidate(ctx, s.cache, cache.KeyAchievements)
	return a, nil
}

func (s *contentService) DeleteAchievement(ctx context.Context, id int64) error {
	if err := security.RequireAdmin(ctx); err != nil {
		return err
	}
	if err := s.achievements.Delete(ctx, id); err != nil {
		return err
	}
	cache.Invalidate(ctx, s.cache, cache.KeyAchievements)
	return nil
}

// GetStats returns zero stats until an administrator has saved them.
func (s *contentService) GetStats(ctx context.Context) (*domain.ClubStats, error) {
	return cache.Fetch(ctx, s.cache, cache.KeyClubStats, func(ctx context.Context) (*domain.ClubStats, error) {
		st, err := s.stats.Get(ctx)
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.ClubStats{}, nil
		}
		return st, err
	})
}

func (s *contentService) SaveStats(ctx context.Context, st *domain.ClubStats) (*domain.ClubStats, error) {
	if err := security.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	if st.MatchesWon < 0 || st.ActivePlayers < 0 || st.Championships < 0 {
		return nil, fmt.Errorf("%w: stats cannot be negative", domain.ErrInvalidInput)
	}
	if err := s.stats.Upsert(ctx, st); err != nil {
		return nil, err
	}
	cache.Invalidate(ctx, s.cache, cache.KeyClubStats)
	return st, nil
}
