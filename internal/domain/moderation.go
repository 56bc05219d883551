package domain

import (
	"fmt"
	"strings"
)

// ApplicantStatus is the moderation lifecycle of an applicant: NEW -> PROCESSED.
type ApplicantStatus string

const (
	ApplicantStatusNew       ApplicantStatus = "NEW"
	ApplicantStatusProcessed ApplicantStatus = "PROCESSED"
)

// ParseApplicantStatus accepts the wire form of a status filter.
func ParseApplicantStatus(s string) (ApplicantStatus, error) {
	switch st := ApplicantStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case ApplicantStatusNew, ApplicantStatusProcessed:
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrInvalidInput, s)
}

// Process is the only edge of the applicant machine. It is idempotent on PROCESSED.
func (s ApplicantStatus) Process() (ApplicantStatus, error) {
	switch s {
	case ApplicantStatusNew, ApplicantStatusProcessed:
		return ApplicantStatusProcessed, nil
	}
	return s, fmt.Errorf("%w: cannot process from %q", ErrInvalidTransition, s)
}

// Approval gates whether a player profile appears on the public roster.
// The zero value is Unapproved.
type Approval bool

const (
	Unapproved Approval = false
	Approved   Approval = true
)

// Approve is the only edge of the approval machine. It is idempotent.
func (a Approval) Approve() Approval {
	return Approved
}
