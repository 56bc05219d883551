package http_test

import (
	"context"
	"io"

	"spartans-cricket-backend/internal/domain"
	"spartans-cricket-backend/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockIntakeService struct {
	mock.Mock
}

func (m *MockIntakeService) SubmitJoinRequest(ctx context.Context, a *domain.Applicant, honeypot string) (*domain.Applicant, error) {
	args := m.Called(ctx, a, honeypot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Applicant), args.Error(1)
}

func (m *MockIntakeService) SubmitRegistration(ctx context.Context, a *domain.Applicant, honeypot string, force bool) (*domain.Applicant, error) {
	args := m.Called(ctx, a, honeypot, force)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Applicant), args.Error(1)
}

func (m *MockIntakeService) SubmitPlayerApplication(ctx context.Context, p *domain.Player, image *storage.ImageUpload) (*domain.Player, error) {
	args := m.Called(ctx, p, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockIntakeService) ListApplicants(ctx context.Context, kind domain.ApplicantKind, status *domain.ApplicantStatus) ([]domain.Applicant, error) {
	args := m.Called(ctx, kind, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Applicant), args.Error(1)
}

type MockModerationService struct {
	mock.Mock
}

func (m *MockModerationService) ProcessApplicant(ctx context.Context, kind domain.ApplicantKind, id int64) (*domain.Applicant, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Applicant), args.Error(1)
}

func (m *MockModerationService) ApprovePlayer(ctx context.Context, id int64) (*domain.Player, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockModerationService) PendingSummary(ctx context.Context) (*domain.ModerationSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ModerationSummary), args.Error(1)
}

type MockRosterService struct {
	mock.Mock
}

func (m *MockRosterService) ListPlayers(ctx context.Context, includePending bool) ([]domain.Player, error) {
	args := m.Called(ctx, includePending)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Player), args.Error(1)
}

func (m *MockRosterService) UpdatePlayer(ctx context.Context, p *domain.Player, image *storage.ImageUpload) (*domain.Player, error) {
	args := m.Called(ctx, p, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockRosterService) DeletePlayer(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) ListFixtures(ctx context.Context) ([]domain.MatchFixture, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MatchFixture), args.Error(1)
}

func (m *MockContentService) CreateFixture(ctx context.Context, f *domain.MatchFixture) (*domain.MatchFixture, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MatchFixture), args.Error(1)
}

func (m *MockContentService) UpdateFixture(ctx context.Context, f *domain.MatchFixture) (*domain.MatchFixture, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MatchFixture), args.Error(1)
}

func (m *MockContentService) DeleteFixture(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockContentService) ListAchievements(ctx context.Context) ([]domain.Achievement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Achievement), args.Error(1)
}

func (m *MockContentService) CreateAchievement(ctx context.Context, a *domain.Achievement) (*domain.Achievement, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Achievement), args.Error(1)
}

func (m *MockContentService) UpdateAchievement(ctx context.Context, a *domain.Achievement) (*domain.Achievement, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Achievement), args.Error(1)
}

func (m *MockContentService) DeleteAchievement(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockContentService) GetStats(ctx context.Context) (*domain.ClubStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClubStats), args.Error(1)
}

func (m *MockContentService) SaveStats(ctx context.Context, s *domain.ClubStats) (*domain.ClubStats, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClubStats), args.Error(1)
}

type MockGalleryService struct {
	mock.Mock
}

func (m *MockGalleryService) ListGallery(ctx context.Context, category string) ([]domain.GalleryItem, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GalleryItem), args.Error(1)
}

func (m *MockGalleryService) AddGalleryItem(ctx context.Context, item *domain.GalleryItem, image *storage.ImageUpload) (*domain.GalleryItem, error) {
	args := m.Called(ctx, item, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GalleryItem), args.Error(1)
}

func (m *MockGalleryService) DeleteGalleryItem(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockGalleryService) OpenGalleryImage(ctx context.Context, id int64) (io.ReadCloser, string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.String(1), args.Error(2)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}
