package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"spartans-cricket-backend/internal/domain"
	"spartans-cricket-backend/internal/logger"
	"spartans-cricket-backend/internal/metrics"
	"spartans-cricket-backend/internal/repository"
	"spartans-cricket-backend/internal/security"
	"spartans-cricket-backend/internal/storage"
)

type intakeService struct {
	applicants    repository.ApplicantRepository
	players       repository.PlayerRepository
	images        *imageUploader
	validator     IntakeValidator
	registrations *DuplicateDetector
}

func NewIntakeService(
	applicants repository.ApplicantRepository,
	players repository.PlayerRepository,
	store storage.ImageStore,
	storageCfg storage.Config,
) IntakeService {
	return &intakeService{
		applicants:    applicants,
		players:       players,
		images:        &imageUploader{store: store, cfg: storageCfg},
		registrations: NewDuplicateDetector(applicants, domain.ApplicantKindRegistration),
	}
}

// normalizeApplicant trims the free-text fields. Every field is optional.
func normalizeApplicant(a *domain.Applicant) {
	a.Name = strings.TrimSpace(a.Name)
	a.Email = strings.TrimSpace(a.Email)
	a.Phone = strings.TrimSpace(a.Phone)
	a.Role = strings.TrimSpace(a.Role)
	a.Experience = strings.TrimSpace(a.Experience)
	a.Message = strings.TrimSpace(a.Message)
}

const maxLoggedName = 64

// loggableName truncates attacker-controlled text before it reaches the logs.
func loggableName(name string) string {
	if utf8.RuneCountInString(name) <= maxLoggedName {
		return name
	}
	return string([]rune(name)[:maxLoggedName]) + "..."
}

// suppressed records a honeypot hit; the caller answers with an empty record.
func suppressed(ctx context.Context, kind domain.ApplicantKind, name string) *domain.Applicant {
	logger.WarnContext(ctx, "Bot detected via honeypot, submission dropped", "kind", kind, "name", loggableName(name), "name_len", len(name))
	metrics.IntakeSubmissions.WithLabelValues(string(kind), metrics.OutcomeSuppressed).Inc()
	return &domain.Applicant{}
}

func (s *intakeService) SubmitJoinRequest(ctx context.Context, a *domain.Applicant, honeypot string) (*domain.Applicant, error) {
	logger.EnterMethod(ctx, "IntakeService.SubmitJoinRequest")
	kind := domain.ApplicantKindJoinRequest

	if s.validator.Screen(honeypot) == Suppress {
		return suppressed(ctx, kind, a.Name), nil
	}

	a.Kind = kind
	normalizeApplicant(a)

	if err := s.applicants.Create(ctx, a); err != nil {
		logger.ExitMethodWithError(ctx, "IntakeService.SubmitJoinRequest", err)
		metrics.IntakeSubmissions.WithLabelValues(string(kind), metrics.OutcomeFailed).Inc()
		return nil, err
	}

	metrics.IntakeSubmissions.WithLabelValues(string(kind), metrics.OutcomeAccepted).Inc()
	logger.InfoContext(ctx, "Join request received", "id", a.ID)
	logger.ExitMethod(ctx, "IntakeService.SubmitJoinRequest", "id", a.ID)
	return a, nil
}

func (s *intakeService) SubmitRegistration(ctx context.Context, a *domain.Applicant, honeypot string, force bool) (*domain.Applicant, error) {
	logger.EnterMethod(ctx, "IntakeService.SubmitRegistration", "force", force)
	kind := domain.ApplicantKindRegistration

	if s.validator.Screen(honeypot) == Suppress {
		return suppressed(ctx, kind, a.Name), nil
	}

	a.Kind = kind
	normalizeApplicant(a)

	var matches int64
	admit := s.registrations.Admit(a, force, func(count int64) { matches = count })
	err := s.applicants.CreateUnlessDuplicate(ctx, a, admit)
	if err != nil {
		var dup *domain.DuplicateError
		if errors.As(err, &dup) {
			logger.InfoContext(ctx, "Duplicate registration rejected", "matches", dup.Count)
			metrics.IntakeSubmissions.WithLabelValues(string(kind), metrics.OutcomeDuplicate).Inc()
			return nil, err
		}
		logger.ExitMethodWithError(ctx, "IntakeService.SubmitRegistration", err)
		metrics.IntakeSubmissions.WithLabelValues(string(kind), metrics.OutcomeFailed).Inc()
		return nil, err
	}

	if matches > 0 {
		logger.WarnContext(ctx, "Duplicate registration accepted by force", "id", a.ID, "matches", matches)
		metrics.IntakeSubmissions.WithLabelValues(string(kind), metrics.OutcomeForced).Inc()
	} else {
		metrics.IntakeSubmissions.WithLabelValues(string(kind), metrics.OutcomeAccepted).Inc()
	}
	logger.ExitMethod(ctx, "IntakeService.SubmitRegistration", "id", a.ID)
	return a, nil
}

func (s *intakeService) SubmitPlayerApplication(ctx context.Context, p *domain.Player, image *storage.ImageUpload) (*domain.Player, error) {
	logger.EnterMethod(ctx, "IntakeService.SubmitPlayerApplication")
	const kind = "PLAYER"

	if err := normalizePlayer(p); err != nil {
		metrics.IntakeSubmissions.WithLabelValues(kind, metrics.OutcomeFailed).Inc()
		return nil, err
	}

	key, err := s.images.save(ctx, image)
	if err != nil {
		metrics.IntakeSubmissions.WithLabelValues(kind, metrics.OutcomeFailed).Inc()
		return nil, err
	}
	p.ImageKey, p.ImageURL, p.ImageContentType = "", "", ""
	if key != "" {
		p.ImageKey = key
		p.ImageURL = s.images.store.URL(key)
		p.ImageContentType = image.ContentType
	}

	// Whatever the form said, a new profile waits for an administrator.
	p.Approved = domain.Unapproved
	if err := s.players.Create(ctx, p); err != nil {
		s.images.discard(ctx, key)
		logger.ExitMethodWithError(ctx, "IntakeService.SubmitPlayerApplication", err)
		metrics.IntakeSubmissions.WithLabelValues(kind, metrics.OutcomeFailed).Inc()
		return nil, err
	}

	metrics.IntakeSubmissions.WithLabelValues(kind, metrics.OutcomeAccepted).Inc()
	logger.InfoContext(ctx, "Player profile submitted for approval", "id", p.ID)
	logger.ExitMethod(ctx, "IntakeService.SubmitPlayerApplication", "id", p.ID)
	return p, nil
}

func (s *intakeService) ListApplicants(ctx context.Context, kind domain.ApplicantKind, status *domain.ApplicantStatus) ([]domain.Applicant, error) {
	if err := security.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	return s.applicants.List(ctx, kind, status)
}

func normalizePlayer(p *domain.Player) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Role = strings.TrimSpace(p.Role)
	p.BattingStyle = strings.TrimSpace(p.BattingStyle)
	p.BowlingStyle = strings.TrimSpace(p.BowlingStyle)
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if p.Matches < 0 || p.Runs < 0 || p.Wickets < 0 {
		return fmt.Errorf("%w: career numbers cannot be negative", domain.ErrInvalidInput)
	}
	return nil
}
