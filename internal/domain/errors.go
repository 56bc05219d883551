package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicate         = errors.New("duplicate details found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrForbidden         = errors.New("administrator access required")
)

// DuplicateError reports how many existing applicants share the submitted email or phone.
type DuplicateError struct {
	Count int64
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s: %d matching applicant(s)", ErrDuplicate.Error(), e.Count)
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}
