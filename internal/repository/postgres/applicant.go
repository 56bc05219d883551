package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"spartans-cricket-backend/internal/domain"
	"spartans-cricket-backend/internal/logger"
	"spartans-cricket-backend/internal/repository"
)

const applicantColumns = `id, kind, name, email, phone, role, experience, message, legal_consent, status, created_at`

type applicantRepository struct {
	db *sql.DB
}

func NewApplicantRepository(db *sql.DB) repository.ApplicantRepository {
	return &applicantRepository{db: db}
}

func scanApplicant(row rowScanner) (*domain.Applicant, error) {
	a := &domain.Applicant{}
	err := row.Scan(&a.ID, &a.Kind, &a.Name, &a.Email, &a.Phone, &a.Role, &a.Experience, &a.Message, &a.LegalConsent, &a.Status, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// insertApplicant always stores status NEW with a server timestamp.
func insertApplicant(ctx context.Context, q queryRower, a *domain.Applicant) error {
	a.Status = domain.ApplicantStatusNew
	a.CreatedAt = time.Now().UTC()
	query := `INSERT INTO applicants (kind, name, email, phone, role, experience, message, legal_consent, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return q.QueryRowContext(ctx, query, a.Kind, a.Name, a.Email, a.Phone, a.Role, a.Experience, a.Message, a.LegalConsent, a.Status, a.CreatedAt).Scan(&a.ID)
}

func (r *applicantRepository) Create(ctx context.Context, a *domain.Applicant) error {
	logger.DatabaseCall(ctx, "CreateApplicant", "kind", a.Kind)
	err := insertApplicant(ctx, r.db, a)
	logger.DatabaseResult(ctx, "CreateApplicant", 1, err, "id", a.ID)
	if err != nil {
		return writeErr(err, "create", "applicant")
	}
	return nil
}

func (r *applicantRepository) CreateUnlessDuplicate(ctx context.Context, a *domain.Applicant, admit func(ctx context.Context, counter repository.ApplicantCounter) error) error {
	logger.DatabaseCall(ctx, "CreateApplicantUnlessDuplicate", "kind", a.Kind)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Locks are released at commit or rollback. Sorted order keeps two
	// submissions that share both keys from deadlocking.
	for _, key := range identityLockKeys(a.Kind, a.Email, a.Phone) {
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
			return fmt.Errorf("failed to lock applicant identity: %w", err)
		}
	}

	if err := admit(ctx, applicantCounter{q: tx}); err != nil {
		logger.DatabaseResult(ctx, "CreateApplicantUnlessDuplicate", 0, nil, "admitted", false)
		return err
	}

	if err := insertApplicant(ctx, tx, a); err != nil {
		logger.DatabaseResult(ctx, "CreateApplicantUnlessDuplicate", 0, err)
		return writeErr(err, "create", "applicant")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit applicant: %w", err)
	}
	logger.DatabaseResult(ctx, "CreateApplicantUnlessDuplicate", 1, nil, "id", a.ID)
	return nil
}

// identityLockKeys returns the advisory lock keys for the non-empty identity fields, sorted.
func identityLockKeys(kind domain.ApplicantKind, email, phone string) []string {
	var keys []string
	if e := strings.ToLower(strings.TrimSpace(email)); e != "" {
		keys = append(keys, fmt.Sprintf("applicant:%s:email:%s", kind, e))
	}
	if p := strings.TrimSpace(phone); p != "" {
		keys = append(keys, fmt.Sprintf("applicant:%s:phone:%s", kind, p))
	}
	sort.Strings(keys)
	return keys
}

func (r *applicantRepository) GetByID(ctx context.Context, kind domain.ApplicantKind, id int64) (*domain.Applicant, error) {
	query := `SELECT ` + applicantColumns + ` FROM applicants WHERE kind = $1 AND id = $2`
	a, err := scanApplicant(r.db.QueryRowContext(ctx, query, kind, id))
	if err != nil {
		return nil, lookupErr(err, "applicant", id)
	}
	return a, nil
}

func (r *applicantRepository) UpdateStatus(ctx context.Context, kind domain.ApplicantKind, id int64, status domain.ApplicantStatus) (*domain.Applicant, error) {
	logger.DatabaseCall(ctx, "UpdateApplicantStatus", "kind", kind, "id", id, "status", status)
	query := `UPDATE applicants SET status = $3 WHERE kind = $1 AND id = $2 RETURNING ` + applicantColumns
	a, err := scanApplicant(r.db.QueryRowContext(ctx, query, kind, id, status))
	if err != nil {
		logger.DatabaseResult(ctx, "UpdateApplicantStatus", 0, err)
		return nil, lookupErr(err, "applicant", id)
	}
	logger.DatabaseResult(ctx, "UpdateApplicantStatus", 1, nil)
	return a, nil
}

func (r *applicantRepository) List(ctx context.Context, kind domain.ApplicantKind, status *domain.ApplicantStatus) ([]domain.Applicant, error) {
	query := `SELECT ` + applicantColumns + ` FROM applicants WHERE kind = $1`
	args := []any{kind}
	if status != nil {
		query += ` AND status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list applicants: %w", err)
	}
	defer rows.Close()

	applicants := []domain.Applicant{}
	for rows.Next() {
		a, err := scanApplicant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan applicant: %w", err)
		}
		applicants = append(applicants, *a)
	}
	return applicants, rows.Err()
}

// Empty email or phone values never match; email comparison ignores case.
const countByEmailOrPhoneQuery = `SELECT COUNT(*) FROM applicants WHERE kind = $1 AND (
	($2::text <> '' AND LOWER(email) = LOWER($2::text)) OR
	($3::text <> '' AND phone = $3::text))`

// applicantCounter runs the match count on the pool or inside a transaction.
type applicantCounter struct {
	q queryRower
}

func (c applicantCounter) CountByEmailOrPhone(ctx context.Context, kind domain.ApplicantKind, email, phone string) (int64, error) {
	var count int64
	err := c.q.QueryRowContext(ctx, countByEmailOrPhoneQuery, kind, strings.TrimSpace(email), strings.TrimSpace(phone)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count matching applicants: %w", err)
	}
	return count, nil
}

func (r *applicantRepository) CountByEmailOrPhone(ctx context.Context, kind domain.ApplicantKind, email, phone string) (int64, error) {
	return applicantCounter{q: r.db}.CountByEmailOrPhone(ctx, kind, email, phone)
}

func (r *applicantRepository) CountByStatus(ctx context.Context, kind domain.ApplicantKind, status domain.ApplicantStatus) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM applicants WHERE kind = $1 AND status = $2`
	if err := r.db.QueryRowContext(ctx, query, kind, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count applicants: %w", err)
	}
	return count, nil
}
