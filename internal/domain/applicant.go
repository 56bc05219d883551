package domain

import "time"

// ApplicantKind separates the two intake forms that share one moderation lifecycle.
type ApplicantKind string

const (
	ApplicantKindJoinRequest  ApplicantKind = "JOIN_REQUEST"
	ApplicantKindRegistration ApplicantKind = "REGISTRATION"
)

// Applicant is a join request or registration awaiting moderation.
type Applicant struct {
	ID           int64           `json:"id"`
	Kind         ApplicantKind   `json:"kind"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Role         string          `json:"role"`
	Experience   string          `json:"experience"`
	Message      string          `json:"message"`
	LegalConsent bool            `json:"legalConsent"`
	Status       ApplicantStatus `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ModerationSummary counts what is still waiting for an administrator.
type ModerationSummary struct {
	NewJoinRequests   int64 `json:"newJoinRequests"`
	NewRegistrations  int64 `json:"newRegistrations"`
	UnapprovedPlayers int64 `json:"unapprovedPlayers"`
}

// Empty reports whether nothing is pending.
func (s ModerationSummary) Empty() bool {
	return s.NewJoinRequests == 0 && s.NewRegistrations == 0 && s.UnapprovedPlayers == 0
}
