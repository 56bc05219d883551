package service

import (
	"context"

	"spartans-cricket-backend/internal/cache"
	"spartans-cricket-backend/internal/domain"
	"spartans-cricket-backend/internal/logger"
	"spartans-cricket-backend/internal/repository"
	"spartans-cricket-backend/internal/security"
	"spartans-cricket-backend/internal/storage"
)

type rosterService struct {
	players repository.PlayerRepository
	images  *imageUploader
	cache   cache.Cache
}

func NewRosterService(players repository.PlayerRepository, store storage.ImageStore, storageCfg storage.Config, c cache.Cache) RosterService {
	return &rosterService{
		players: players,
		images:  &imageUploader{store: store, cfg: storageCfg},
		cache:   c,
	}
}

func (s *rosterService) ListPlayers(ctx context.Context, includePending bool) ([]domain.Player, error) {
	if includePending {
		if err := security.RequireAdmin(ctx); err != nil {
			return nil, err
		}
		return s.players.List(ctx, false)
	}
	return cache.Fetch(ctx, s.cache, cache.KeyApprovedPlayers, func(ctx context.Context) ([]domain.Player, error) {
		return s.players.List(ctx, true)
	})
}

// UpdatePlayer edits profile fields. A new image replaces the old one; approval is untouched.
func (s *rosterService) UpdatePlayer(ctx context.Context, p *domain.Player, image *storage.ImageUpload) (*domain.Player, error) {
	logger.EnterMethod(ctx, "RosterService.UpdatePlayer", "id", p.ID)
	if err := security.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	if err := normalizePlayer(p); err != nil {
		return nil, err
	}

	current, err := s.players.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	key, err := s.images.save(ctx, image)
	if err != nil {
		return nil, err
	}
	p.ImageKey, p.ImageURL, p.ImageContentType = current.ImageKey, current.ImageURL, current.ImageContentType
	if key != "" {
		p.ImageKey = key
		p.ImageURL = s.images.store.URL(key)
		p.ImageContentType = image.ContentType
	}

	if err := s.players.Update(ctx, p); err != nil {
		s.images.discard(ctx, key)
		logger.ExitMethodWithError(ctx, "RosterService.UpdatePlayer", err)
		return nil, err
	}
	if key != "" {
		s.images.discard(ctx, current.ImageKey)
	}

	cache.Invalidate(ctx, s.cache, cache.KeyApprovedPlayers)
	logger.ExitMethod(ctx, "RosterService.UpdatePlayer", "id", p.ID)
	return p, nil
}

func (s *rosterService) DeletePlayer(ctx context.Context, id int64) error {
	if err := security.RequireAdmin(ctx); err != nil {
		return err
	}
	current, err := s.players.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.players.Delete(ctx, id); err != nil {
		return err
	}
	s.images.discard(ctx, current.ImageKey)
	cache.Invalidate(ctx, s.cache, cache.KeyApprovedPlayers)
	logger.InfoContext(ctx, "Player deleted", "id", id)
	return nil
}
