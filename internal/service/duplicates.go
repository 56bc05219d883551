package service

import (
	"context"

	"spartans-cricket-backend/internal/domain"
	"spartans-cricket-backend/internal/repository"
)

type Decision int

const (
	Proceed Decision = iota
	Reject
)

// DuplicateDetector matches a submission against earlier ones of the same kind by email or phone.
type DuplicateDetector struct {
	counter repository.ApplicantCounter
	kind    domain.ApplicantKind
}

func NewDuplicateDetector(counter repository.ApplicantCounter, kind domain.ApplicantKind) *DuplicateDetector {
	return &DuplicateDetector{counter: counter, kind: kind}
}

func (d *DuplicateDetector) CountMatches(ctx context.Context, email, phone string) (int64, error) {
	return d.counter.CountByEmailOrPhone(ctx, d.kind, email, phone)
}

// Decide never rejects a forced submission.
func (d *DuplicateDetector) Decide(count int64, force bool) Decision {
	if force || count == 0 {
		return Proceed
	}
	return Reject
}

// Admit returns the check run inside the insert transaction: count matches
// through the transaction's counter, report the count to observe, then decide.
func (d *DuplicateDetector) Admit(a *domain.Applicant, force bool, observe func(count int64)) func(context.Context, repository.ApplicantCounter) error {
	return func(ctx context.Context, counter repository.ApplicantCounter) error {
		count, err := NewDuplicateDetector(counter, d.kind).CountMatches(ctx, a.Email, a.Phone)
		if err != nil {
			return err
		}
		if observe != nil {
			observe(count)
		}
		if d.Decide(count, force) == Reject {
			return &domain.DuplicateError{Count: count}
		}
		return nil
	}
}
