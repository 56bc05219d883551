package repository

import (
	"context"

	"spartans-cricket-backend/internal/domain"
)

// ApplicantCounter counts applicants of one kind sharing an email or phone.
type ApplicantCounter interface {
	CountByEmailOrPhone(ctx context.Context, kind domain.ApplicantKind, email, phone string) (int64, error)
}

// ApplicantRepository stores join requests and registrations, scoped by kind.
type ApplicantRepository interface {
	ApplicantCounter
	Create(ctx context.Context, a *domain.Applicant) error
	// CreateUnlessDuplicate serialises on the applicant's email and phone, then
	// inserts only if admit returns nil. admit receives a counter bound to the
	// same transaction, so its count sees every committed competitor.
	CreateUnlessDuplicate(ctx context.Context, a *domain.Applicant, admit func(ctx context.Context, counter ApplicantCounter) error) error
	GetByID(ctx context.Context, kind domain.ApplicantKind, id int64) (*domain.Applicant, error)
	UpdateStatus(ctx context.Context, kind domain.ApplicantKind, id int64, status domain.ApplicantStatus) (*domain.Applicant, error)
	// List returns newest first; a nil status returns every status.
	List(ctx context.Context, kind domain.ApplicantKind, status *domain.ApplicantStatus) ([]domain.Applicant, error)
	CountByStatus(ctx context.Context, kind domain.ApplicantKind, status domain.ApplicantStatus) (int64, error)
}

type PlayerRepository interface {
	// Create always stores the player unapproved.
	Create(ctx context.Context, p *domain.Player) error
	GetByID(ctx context.Context, id int64) (*domain.Player, error)
	// Update writes profile fields only; the approval flag is never touched.
	Update(ctx context.Context, p *domain.Player) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, approvedOnly bool) ([]domain.Player, error)
	SetApproved(ctx context.Context, id int64) (*domain.Player, error)
	CountUnapproved(ctx context.Context) (int64, error)
}

type FixtureRepository interface {
	Create(ctx context.Context, m *domain.MatchFixture) error
	GetByID(ctx context.Context, id int64) (*domain.MatchFixture, error)
	Update(ctx context.Context, m *domain.MatchFixture) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.MatchFixture, error)
}

type AchievementRepository interface {
	Create(ctx context.Context, a *domain.Achievement) error
	GetByID(ctx context.Context, id int64) (*domain.Achievement, error)
	Update(ctx context.Context, a *domain.Achievement) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Achievement, error)
}

type GalleryRepository interface {
	Create(ctx context.Context, item *domain.GalleryItem) error
	GetByID(ctx context.Context, id int64) (*domain.GalleryItem, error)
	SetImageURL(ctx context.Context, id int64, url string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, category string) ([]domain.GalleryItem, error)
}

type ClubStatsRepository interface {
	// Get returns ErrNotFound until stats have been saved once.
	Get(ctx context.Context) (*domain.ClubStats, error)
	Upsert(ctx context.Context, s *domain.ClubStats) error
}
