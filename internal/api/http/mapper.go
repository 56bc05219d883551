package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"spartans-cricket-backend/internal/domain"
	"spartans-cricket-backend/internal/storage"
)

// Join requests use the field names of the club's join form.
type joinRequestPayload struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Role         string `json:"role"`
	Experience   string `json:"experience"`
	Message      string `json:"message"`
	LegalConsent bool   `json:"legalConsent"`
	Website      string `json:"website"` // honeypot, hidden from humans
}

type joinRequestResponse struct {
	ID           int64      `json:"id,omitempty"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Role         string     `json:"role"`
	Experience   string     `json:"experience"`
	Message      string     `json:"message"`
	LegalConsent bool       `json:"legalConsent"`
	Status       string     `json:"status"`
	CreatedAt    *time.Time `json:"createdAt"`
}

func (p joinRequestPayload) toDomain() *domain.Applicant {
	return &domain.Applicant{
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		Role:         p.Role,
		Experience:   p.Experience,
		Message:      p.Message,
		LegalConsent: p.LegalConsent,
	}
}

func createdAt(a *domain.Applicant) *time.Time {
	if a.CreatedAt.IsZero() {
		return nil
	}
	t := a.CreatedAt
	return &t
}

func toJoinRequestResponse(a *domain.Applicant) joinRequestResponse {
	return joinRequestResponse{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		Phone:        a.Phone,
		Role:         a.Role,
		Experience:   a.Experience,
		Message:      a.Message,
		LegalConsent: a.LegalConsent,
		Status:       string(a.Status),
		CreatedAt:    createdAt(a),
	}
}

// Registrations use the field names of the season registration form.
type registrationPayload struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phoneNumber"`
	PreferredRole   string `json:"preferredRole"`
	ExperienceLevel string `json:"experienceLevel"`
	LegalConsent    bool   `json:"legalConsent"`
	Website         string `json:"website"`
}

type registrationResponse struct {
	ID              int64      `json:"id,omitempty"`
	FullName        string     `json:"fullName"`
	Email           string     `json:"email"`
	PhoneNumber     string     `json:"phoneNumber"`
	PreferredRole   string     `json:"preferredRole"`
	ExperienceLevel string     `json:"experienceLevel"`
	LegalConsent    bool       `json:"legalConsent"`
	Status          string     `json:"status"`
	CreatedAt       *time.Time `json:"createdAt"`
}

func (p registrationPayload) toDomain() *domain.Applicant {
	return &domain.Applicant{
		Name:         p.FullName,
		Email:        p.Email,
		Phone:        p.PhoneNumber,
		Role:         p.PreferredRole,
		Experience:   p.ExperienceLevel,
		LegalConsent: p.LegalConsent,
	}
}

func toRegistrationResponse(a *domain.Applicant) registrationResponse {
	return registrationResponse{
		ID:              a.ID,
		FullName:        a.Name,
		Email:           a.Email,
		PhoneNumber:     a.Phone,
		PreferredRole:   a.Role,
		ExperienceLevel: a.Experience,
		LegalConsent:    a.LegalConsent,
		Status:          string(a.Status),
		CreatedAt:       createdAt(a),
	}
}

func toApplicantResponses[T any](list []domain.Applicant, conv func(*domain.Applicant) T) []T {
	out := make([]T, 0, len(list))
	for i := range list {
		out = append(out, conv(&list[i]))
	}
	return out
}

// fixturePayload accepts RFC 3339 dates and the zone-less form sent by date pickers.
type fixturePayload struct {
	Opponent  string `json:"opponent"`
	MatchDate string `json:"matchDate"`
	Venue     string `json:"venue"`
	Status    string `json:"status"`
	Result    string `json:"result"`
}

var matchDateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"}

func (p fixturePayload) toDomain() (*domain.MatchFixture, error) {
	m := &domain.MatchFixture{Opponent: p.Opponent, Venue: p.Venue, Status: p.Status, Result: p.Result}
	if p.MatchDate == "" {
		return m, nil
	}
	for _, layout := range matchDateLayouts {
		if t, err := time.Parse(layout, p.MatchDate); err == nil {
			m.MatchDate = t.UTC()
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: unrecognised matchDate %q", domain.ErrInvalidInput, p.MatchDate)
}

func formInt32(r *http.Request, field string) (int32, error) {
	v := strings.TrimSpace(r.FormValue(field))
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a whole number", domain.ErrInvalidInput, field)
	}
	return int32(n), nil
}

// playerFromForm reads the multipart fields shared by create and update.
func playerFromForm(r *http.Request) (*domain.Player, error) {
	p := &domain.Player{
		Name:         r.FormValue("name"),
		Role:         r.FormValue("role"),
		BattingStyle: r.FormValue("battingStyle"),
		BowlingStyle: r.FormValue("bowlingStyle"),
	}
	var err error
	if p.Matches, err = formInt32(r, "matches"); err != nil {
		return nil, err
	}
	if p.Runs, err = formInt32(r, "runs"); err != nil {
		return nil, err
	}
	if p.Wickets, err = formInt32(r, "wickets"); err != nil {
		return nil, err
	}
	if v := r.FormValue("legalConsent"); v != "" {
		if p.LegalConsent, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("%w: legalConsent must be true or false", domain.ErrInvalidInput)
		}
	}
	return p, nil
}

// formImage returns the optional "image" part. An empty part counts as absent.
func formImage(r *http.Request) (*storage.ImageUpload, func(), error) {
	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: unreadable image: %v", domain.ErrInvalidInput, err)
	}
	if header.Size == 0 {
		file.Close()
		return nil, func() {}, nil
	}
	upload := &storage.ImageUpload{
		Reader:      file,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}
	return upload, func() { file.Close() }, nil
}

func parseMultipart(w http.ResponseWriter, r *http.Request, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+maxJSONBody)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return fmt.Errorf("%w: malformed multipart form: %v", domain.ErrInvalidInput, err)
	}
	return nil
}
