package service_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"spartans-cricket-backend/internal/domain"
	"spartans-cricket-backend/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockApplicantRepo
type MockApplicantRepo struct {
	mock.Mock
}

func (m *MockApplicantRepo) Create(ctx context.Context, a *domain.Applicant) error {
	args := m.Called(ctx, a)
	if args.Error(0) == nil {
		a.ID = 1
		a.Status = domain.ApplicantStatusNew
		a.CreatedAt = time.Now().UTC()
	}
	return args.Error(0)
}

// fixedCounter reports the same match count for every lookup.
type fixedCounter int64

func (c fixedCounter) CountByEmailOrPhone(context.Context, domain.ApplicantKind, string, string) (int64, error) {
	return int64(c), nil
}

// CreateUnlessDuplicate hands admit a counter yielding the configured match count, like the real transaction does.
func (m *MockApplicantRepo) CreateUnlessDuplicate(ctx context.Context, a *domain.Applicant, admit func(context.Context, repository.ApplicantCounter) error) error {
	args := m.Called(ctx, a)
	if err := args.Error(1); err != nil {
		return err
	}
	if err := admit(ctx, fixedCounter(args.Get(0).(int64))); err != nil {
		return err
	}
	a.ID = 2
	a.Status = domain.ApplicantStatusNew
	a.CreatedAt = time.Now().UTC()
	return nil
}
func (m *MockApplicantRepo) GetByID(ctx context.Context, kind domain.ApplicantKind, id int64) (*domain.Applicant, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Applicant), args.Error(1)
}
func (m *MockApplicantRepo) UpdateStatus(ctx context.Context, kind domain.ApplicantKind, id int64, status domain.ApplicantStatus) (*domain.Applicant, error) {
	args := m.Called(ctx, kind, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Applicant), args.Error(1)
}
func (m *MockApplicantRepo) List(ctx context.Context, kind domain.ApplicantKind, status *domain.ApplicantStatus) ([]domain.Applicant, error) {
	args := m.Called(ctx, kind, status)
	return args.Get(0).([]domain.Applicant), args.Error(1)
}
func (m *MockApplicantRepo) CountByEmailOrPhone(ctx context.Context, kind domain.ApplicantKind, email, phone string) (int64, error) {
	args := m.Called(ctx, kind, email, phone)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockApplicantRepo) CountByStatus(ctx context.Context, kind domain.ApplicantKind, status domain.ApplicantStatus) (int64, error) {
	args := m.Called(ctx, kind, status)
	return args.Get(0).(int64), args.Error(1)
}

// MockPlayerRepo
type MockPlayerRepo struct {
	mock.Mock
}

func (m *MockPlayerRepo) Create(ctx context.Context, p *domain.Player) error {
	args := m.Called(ctx, p)
	if args.Error(0) == nil {
		p.ID = 10
	}
	return args.Error(0)
}
func (m *MockPlayerRepo) GetByID(ctx context.Context, id int64) (*domain.Player, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}
func (m *MockPlayerRepo) Update(ctx context.Context, p *domain.Player) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPlayerRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPlayerRepo) List(ctx context.Context, approvedOnly bool) ([]domain.Player, error) {
	args := m.Called(ctx, approvedOnly)
	return args.Get(0).([]domain.Player), args.Error(1)
}
func (m *MockPlayerRepo) SetApproved(ctx context.Context, id int64) (*domain.Player, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}
func (m *MockPlayerRepo) CountUnapproved(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockFixtureRepo
type MockFixtureRepo struct {
	mock.Mock
}

func (m *MockFixtureRepo) Create(ctx context.Context, f *domain.MatchFixture) error {
	return m.Called(ctx, f).Error(0)
}
func (m *MockFixtureRepo) GetByID(ctx context.Context, id int64) (*domain.MatchFixture, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MatchFixture), args.Error(1)
}
func (m *MockFixtureRepo) Update(ctx context.Context, f *domain.MatchFixture) error {
	return m.Called(ctx, f).Error(0)
}
func (m *MockFixtureRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockFixtureRepo) List(ctx context.Context) ([]domain.MatchFixture, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.MatchFixture), args.Error(1)
}

// MockAchievementRepo
type MockAchievementRepo struct {
	mock.Mock
}

func (m *MockAchievementRepo) Create(ctx context.Context, a *domain.Achievement) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockAchievementRepo) GetByID(ctx context.Context, id int64) (*domain.Achievement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Achievement), args.Error(1)
}
func (m *MockAchievementRepo) Update(ctx context.Context, a *domain.Achievement) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockAchievementRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockAchievementRepo) List(ctx context.Context) ([]domain.Achievement, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Achievement), args.Error(1)
}

// MockGalleryRepo
type MockGalleryRepo struct {
	mock.Mock
}

func (m *MockGalleryRepo) Create(ctx context.Context, g *domain.GalleryItem) error {
	args := m.Called(ctx, g)
	if args.Error(0) == nil {
		g.ID = 5
	}
	return args.Error(0)
}
func (m *MockGalleryRepo) GetByID(ctx context.Context, id int64) (*domain.GalleryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GalleryItem), args.Error(1)
}
func (m *MockGalleryRepo) SetImageURL(ctx context.Context, id int64, url string) error {
	return m.Called(ctx, id, url).Error(0)
}
func (m *MockGalleryRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockGalleryRepo) List(ctx context.Context, category string) ([]domain.GalleryItem, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]domain.GalleryItem), args.Error(1)
}

// MockStatsRepo
type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) Get(ctx context.Context) (*domain.ClubStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClubStats), args.Error(1)
}
func (m *MockStatsRepo) Upsert(ctx context.Context, s *domain.ClubStats) error {
	return m.Called(ctx, s).Error(0)
}

// memStore is an in-memory image store.
type memStore struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{files: map[string][]byte{}}
}

func (s *memStore) Save(ctx context.Context, key string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[key] = data
	return nil
}

func (s *memStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[key]
	if !ok {
		return nil, fmt.Errorf("%w: image %q", domain.ErrNotFound, key)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, key)
	return nil
}

func (s *memStore) URL(key string) string {
	return "http://test/uploads/" + key
}

func (s *memStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.files)
}

// memApplicants is an in-memory applicant store that really counts matches,
// for scenarios that span several submissions.
type memApplicants struct {
	MockApplicantRepo
	mu     sync.Mutex
	rows   []domain.Applicant
	nextID int64
}

func (r *memApplicants) CountByEmailOrPhone(ctx context.Context, kind domain.ApplicantKind, email, phone string) (int64, error) {
	var n int64
	for _, a := range r.rows {
		if a.Kind != kind {
			continue
		}
		if (email != "" && strings.EqualFold(a.Email, email)) || (phone != "" && a.Phone == phone) {
			n++
		}
	}
	return n, nil
}

func (r *memApplicants) insert(a *domain.Applicant) {
	r.nextID++
	a.ID = r.nextID
	a.Status = domain.ApplicantStatusNew
	a.CreatedAt = time.Now().UTC()
	r.rows = append(r.rows, *a)
}

func (r *memApplicants) Create(ctx context.Context, a *domain.Applicant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.insert(a)
	return nil
}

func (r *memApplicants) CreateUnlessDuplicate(ctx context.Context, a *domain.Applicant, admit func(context.Context, repository.ApplicantCounter) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := admit(ctx, r); err != nil {
		return err
	}
	r.insert(a)
	return nil
}

func (r *memApplicants) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}
