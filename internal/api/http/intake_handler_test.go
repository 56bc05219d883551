package http_test

import (
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	api "spartans-cricket-backend/internal/api/http"
	"spartans-cricket-backend/internal/domain"
	"spartans-cricket-backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitJoinRequest(t *testing.T) {
	t.Run("Stored", func(t *testing.T) {
		ts := newTestServer(t, api.RouterConfig{})
		created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		ts.intake.On("SubmitJoinRequest", mock.Anything, mock.MatchedBy(func(a *domain.Applicant) bool {
			return a.Name == "Ann" && a.Email == "a@x.com" && a.LegalConsent
		}), "").Return(&domain.Applicant{
			ID: 7, Kind: domain.ApplicantKindJoinRequest, Name: "Ann", Email: "a@x.com",
			LegalConsent: true, Status: domain.ApplicantStatusNew, CreatedAt: created,
		}, nil).Once()

		rec := ts.do(jsonRequest(t, http.MethodPost, "/api/join", map[string]any{
			"name": "Ann", "email": "a@x.com", "legalConsent": true,
		}))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.EqualValues(t, 7, body["id"])
		assert.Equal(t, "NEW", body["status"])
		assert.Equal(t, true, body["legalConsent"])
		assert.Equal(t, "2026-03-01T10:00:00Z", body["createdAt"])
		ts.intake.AssertExpectations(t)
	})

	t.Run("HoneypotPassedThroughAndEmptyRecordReturned", func(t *testing.T) {
		ts := newTestServer(t, api.RouterConfig{})
		ts.intake.On("SubmitJoinRequest", mock.Anything, mock.Anything, "http://spam.example").
			Return(&domain.Applicant{}, nil).Once()

		rec := ts.do(jsonRequest(t, http.MethodPost, "/api/join", map[string]any{
			"name": "Bot", "website": "http://spam.example",
		}))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.NotContains(t, body, "id")
		assert.Nil(t, body["createdAt"])
		ts.intake.AssertExpectations(t)
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		ts := newTestServer(t, api.RouterConfig{})
		rec := ts.do(jsonRequest(t, http.MethodPost, "/api/join", "{not json"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		ts.intake.AssertNotCalled(t, "SubmitJoinRequest", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSubmitRegistration(t *testing.T) {
	payload := map[string]any{"fullName": "Bea", "email": "b@y.com", "phoneNumber": "111"}

	t.Run("Duplicate", func(t *testing.T) {
		ts := newTestServer(t, api.RouterConfig{})
		ts.intake.On("SubmitRegistration", mock.Anything, mock.MatchedBy(func(a *domain.Applicant) bool {
			return a.Name == "Bea" && a.Phone == "111"
		}), "", false).Return(nil, &domain.DuplicateError{Count: 1}).Once()

		rec := ts.do(jsonRequest(t, http.MethodPost, "/api/register", payload))

		require.Equal(t, http.StatusConflict, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["duplicate"])
		assert.EqualValues(t, 1, body["count"])
		assert.Equal(t, "Duplicate details found", body["message"])
	})

	t.Run("Forced", func(t *testing.T) {
		ts := newTestServer(t, api.RouterConfig{})
		ts.intake.On("SubmitRegistration", mock.Anything, mock.Anything, "", true).
			Return(&domain.Applicant{ID: 3, Name: "Bea", Phone: "111", Status: domain.ApplicantStatusNew, CreatedAt: time.Now()}, nil).Once()

		rec := ts.do(jsonRequest(t, http.MethodPost, "/api/register?force=true", payload))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.EqualValues(t, 3, body["id"])
		assert.Equal(t, "Bea", body["fullName"])
		assert.Equal(t, "111", body["phoneNumber"])
		ts.intake.AssertExpectations(t)
	})

	t.Run("BadForceFlag", func(t *testing.T) {
		ts := newTestServer(t, api.RouterConfig{})
		rec := ts.do(jsonRequest(t, http.MethodPost, "/api/register?force=maybe", payload))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListApplicants(t *testing.T) {
	t.Run("RequiresToken", func(t *testing.T) {
		ts := newTestServer(t, api.RouterConfig{})
		rec := ts.do(jsonRequest(t, http.MethodGet, "/api/join", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		ts.intake.AssertNotCalled(t, "ListApplicants", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("RejectsBadToken", func(t *testing.T) {
		ts := newTestServer(t, api.RouterConfig{})
		rec := ts.do(withBearer(jsonRequest(t, http.MethodGet, "/api/register", nil), "garbage"))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("StatusFilter", func(t *testing.T) {
		ts := newTestServer(t, api.RouterConfig{})
		newer := domain.Applicant{ID: 2, Name: "B", Status: domain.ApplicantStatusNew}
		older := domain.Applicant{ID: 1, Name: "A", Status: domain.ApplicantStatusNew}
		ts.intake.On("ListApplicants", mock.Anything, domain.ApplicantKindRegistration, mock.MatchedBy(func(s *domain.ApplicantStatus) bool {
			return s != nil && *s == domain.ApplicantStatusNew
		})).Return([]domain.Applicant{newer, older}, nil).Once()

		rec := ts.do(withBearer(jsonRequest(t, http.MethodGet, "/api/register?status=new", nil), ts.adminToken(t)))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[
			{"id":2,"fullName":"B","email":"","phoneNumber":"","preferredRole":"","experienceLevel":"","legalConsent":false,"status":"NEW","createdAt":null},
			{"id":1,"fullName":"A","email":"","phoneNumber":"","preferredRole":"","experienceLevel":"","legalConsent":false,"status":"NEW","createdAt":null}
		]`, rec.Body.String())
	})

	t.Run("EmptyListIsArray", func(t *testing.T) {
		ts := newTestServer(t, api.RouterConfig{})
		ts.intake.On("ListApplicants", mock.Anything, domain.ApplicantKindJoinRequest, (*domain.ApplicantStatus)(nil)).
			Return([]domain.Applicant{}, nil).Once()

		rec := ts.do(withBearer(jsonRequest(t, http.MethodGet, "/api/join", nil), ts.adminToken(t)))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("BadStatus", func(t *testing.T) {
		ts := newTestServer(t, api.RouterConfig{})
		rec := ts.do(withBearer(jsonRequest(t, http.MethodGet, "/api/join?status=archived", nil), ts.adminToken(t)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProcessApplicant(t *testing.T) {
	t.Run("Processed", func(t *testing.T) {
		ts := newTestServer(t, api.RouterConfig{})
		ts.moderation.On("ProcessApplicant", mock.Anything, domain.ApplicantKindJoinRequest, int64(4)).
			Return(&domain.Applicant{ID: 4, Status: domain.ApplicantStatusProcessed}, nil).Once()

		rec := ts.do(withBearer(jsonRequest(t, http.MethodPut, "/api/join/4/process", nil), ts.adminToken(t)))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "PROCESSED", decodeBody(t, rec)["status"])
	})

	t.Run("NotFound", func(t *testing.T) {
		ts := newTestServer(t, api.RouterConfig{})
		ts.moderation.On("ProcessApplicant", mock.Anything, domain.ApplicantKindRegistration, int64(99)).
			Return(nil, fmt.Errorf("%w: registration 99", domain.ErrNotFound)).Once()

		rec := ts.do(withBearer(jsonRequest(t, http.MethodPut, "/api/register/99/process", nil), ts.adminToken(t)))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("BadID", func(t *testing.T) {
		ts := newTestServer(t, api.RouterConfig{})
		rec := ts.do(withBearer(jsonRequest(t, http.MethodPut, "/api/join/abc/process", nil), ts.adminToken(t)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSubmitPlayer(t *testing.T) {
	ts := newTestServer(t, api.RouterConfig{})
	ts.intake.On("SubmitPlayerApplication", mock.Anything,
		mock.MatchedBy(func(p *domain.Player) bool {
			return p.Name == "Raj" && p.Runs == 420 && p.Wickets == 3 && p.LegalConsent && !bool(p.Approved)
		}),
		mock.MatchedBy(func(img *storage.ImageUpload) bool {
			if img == nil || img.ContentType != "image/png" || img.Filename != "photo.png" {
				return false
			}
			data, err := io.ReadAll(img.Reader)
			return err == nil && string(data) == "pngbytes"
		}),
	).Return(&domain.Player{ID: 10, Name: "Raj", Runs: 420, Wickets: 3, Approved: domain.Unapproved}, nil).Once()

	req := multipartRequest(t, http.MethodPost, "/api/players", map[string]string{
		"name": "Raj", "role": "All-rounder", "runs": "420", "wickets": "3", "legalConsent": "true",
	}, []byte("pngbytes"))
	rec := ts.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["approved"])
	ts.intake.AssertExpectations(t)

	t.Run("NonNumericStat", func(t *testing.T) {
		req := multipartRequest(t, http.MethodPost, "/api/players", map[string]string{"name": "Raj", "runs": "lots"}, nil)
		assert.Equal(t, http.StatusBadRequest, ts.do(req).Code)
	})

	t.Run("NotMultipart", func(t *testing.T) {
		rec := ts.do(jsonRequest(t, http.MethodPost, "/api/players", map[string]any{"name": "Raj"}))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestApprovePlayer(t *testing.T) {
	ts := newTestServer(t, api.RouterConfig{})
	ts.moderation.On("ApprovePlayer", mock.Anything, int64(10)).
		Return(&domain.Player{ID: 10, Approved: domain.Approved}, nil).Once()
	ts.moderation.On("ApprovePlayer", mock.Anything, int64(11)).
		Return(nil, domain.ErrNotFound).Once()

	rec := ts.do(withBearer(jsonRequest(t, http.MethodPut, "/api/players/10/approve", nil), ts.adminToken(t)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["approved"])

	rec = ts.do(withBearer(jsonRequest(t, http.MethodPut, "/api/players/11/approve", nil), ts.adminToken(t)))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(jsonRequest(t, http.MethodPut, "/api/players/10/approve", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
