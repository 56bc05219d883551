package service

import (
	"context"
	"io"

	"spartans-cricket-backend/internal/domain"
	"spartans-cricket-backend/internal/storage"
)

// IntakeService accepts public submissions and lists them for moderation.
type IntakeService interface {
	// SubmitJoinRequest returns an empty applicant and stores nothing when the honeypot is filled.
	SubmitJoinRequest(ctx context.Context, a *domain.Applicant, honeypot string) (*domain.Applicant, error)
	// SubmitRegistration fails with *domain.DuplicateError when the email or phone is already
	// registered, unless force is set.
	SubmitRegistration(ctx context.Context, a *domain.Applicant, honeypot string, force bool) (*domain.Applicant, error)
	SubmitPlayerApplication(ctx context.Context, p *domain.Player, image *storage.ImageUpload) (*domain.Player, error)
	ListApplicants(ctx context.Context, kind domain.ApplicantKind, status *domain.ApplicantStatus) ([]domain.Applicant, error)
}

type ModerationService interface {
	ProcessApplicant(ctx context.Context, kind domain.ApplicantKind, id int64) (*domain.Applicant, error)
	ApprovePlayer(ctx context.Context, id int64) (*domain.Player, error)
	PendingSummary(ctx context.Context) (*domain.ModerationSummary, error)
}

type RosterService interface {
	// ListPlayers returns the public roster; includePending requires an administrator.
	ListPlayers(ctx context.Context, includePending bool) ([]domain.Player, error)
	UpdatePlayer(ctx context.Context, p *domain.Player, image *storage.ImageUpload) (*domain.Player, error)
	DeletePlayer(ctx context.Context, id int64) error
}

type ContentService interface {
	ListFixtures(ctx context.Context) ([]domain.MatchFixture, error)
	CreateFixture(ctx context.Context, m *domain.MatchFixture) (*domain.MatchFixture, error)
	UpdateFixture(ctx context.Context, m *domain.MatchFixture) (*domain.MatchFixture, error)
	DeleteFixture(ctx context.Context, id int64) error

	ListAchievements(ctx context.Context) ([]domain.Achievement, error)
	CreateAchievement(ctx context.Context, a *domain.Achievement) (*domain.Achievement, error)
	UpdateAchievement(ctx context.Context, a *domain.Achievement) (*domain.Achievement, error)
	DeleteAchievement(ctx context.Context, id int64) error

	GetStats(ctx context.Context) (*domain.ClubStats, error)
	SaveStats(ctx context.Context, s *domain.ClubStats) (*domain.ClubStats, error)
}

type GalleryService interface {
	ListGallery(ctx context.Context, category string) ([]domain.GalleryItem, error)
	AddGalleryItem(ctx context.Context, item *domain.GalleryItem, image *storage.ImageUpload) (*domain.GalleryItem, error)
	DeleteGalleryItem(ctx context.Context, id int64) error
	// OpenGalleryImage returns the image bytes and their content type.
	OpenGalleryImage(ctx context.Context, id int64) (io.ReadCloser, string, error)
}

type AuthService interface {
	// Login returns a signed admin bearer token.
	Login(ctx context.Context, username, password string) (string, error)
}

type EmailService interface {
	SendModerationDigest(ctx context.Context, summary domain.ModerationSummary) error
}
