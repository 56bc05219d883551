package service

import (
	"context"

	"spartans-cricket-backend/internal/cache"
	"spartans-cricket-backend/internal/domain"
	"spartans-cricket-backend/internal/logger"
	"spartans-cricket-backend/internal/metrics"
	"spartans-cricket-backend/internal/repository"
	"spartans-cricket-backend/internal/security"
)

type moderationService struct {
	applicants repository.ApplicantRepository
	players    repository.PlayerRepository
	cache      cache.Cache
}

func NewModerationService(applicants repository.ApplicantRepository, players repository.PlayerRepository, c cache.Cache) ModerationService {
	return &moderationService{applicants: applicants, players: players, cache: c}
}

func (s *moderationService) ProcessApplicant(ctx context.Context, kind domain.ApplicantKind, id int64) (*domain.Applicant, error) {
	logger.EnterMethod(ctx, "ModerationService.ProcessApplicant", "kind", kind, "id", id)
	if err := security.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	current, err := s.applicants.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	next, err := current.Status.Process()
	if err != nil {
		return nil, err
	}
	if next == current.Status {
		return current, nil
	}

	updated, err := s.applicants.UpdateStatus(ctx, kind, id, next)
	if err != nil {
		logger.ExitMethodWithError(ctx, "ModerationService.ProcessApplicant", err)
		return nil, err
	}
	metrics.ModerationTransitions.WithLabelValues(string(kind), string(next)).Inc()
	logger.InfoContext(ctx, "Applicant processed", "kind", kind, "id", id)
	return updated, nil
}

func (s *moderationService) ApprovePlayer(ctx context.Context, id int64) (*domain.Player, error) {
	logger.EnterMethod(ctx, "ModerationService.ApprovePlayer", "id", id)
	if err := security.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	current, err := s.players.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Approved.Approve() == current.Approved {
		return current, nil
	}

	updated, err := s.players.SetApproved(ctx, id)
	if err != nil {
		logger.ExitMethodWithError(ctx, "ModerationService.ApprovePlayer", err)
		return nil, err
	}
	cache.Invalidate(ctx, s.cache, cache.KeyApprovedPlayers)
	metrics.ModerationTransitions.WithLabelValues("PLAYER", "APPROVED").Inc()
	logger.InfoContext(ctx, "Player approved", "id", id)
	return updated, nil
}

// PendingSummary is used by the digest job, which runs without a request principal.
func (s *moderationService) PendingSummary(ctx context.Context) (*domain.ModerationSummary, error) {
	var (
		summary domain.ModerationSummary
		err     error
	)
	if summary.NewJoinRequests, err = s.applicants.CountByStatus(ctx, domain.ApplicantKindJoinRequest, domain.ApplicantStatusNew); err != nil {
		return nil, err
	}
	if summary.NewRegistrations, err = s.applicants.CountByStatus(ctx, domain.ApplicantKindRegistration, domain.ApplicantStatusNew); err != nil {
		return nil, err
	}
	if summary.UnapprovedPlayers, err = s.players.CountUnapproved(ctx); err != nil {
		return nil, err
	}
	return &summary, nil
}
