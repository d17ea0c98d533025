package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"docuprint/internal/domain"
)

// PostgresSignupsRepo is the DB-backed signups store used when
// DB_ENABLED is set.
type PostgresSignupsRepo struct {
	db *sql.DB
}

func NewPostgresSignupsRepo(db *sql.DB) *PostgresSignupsRepo {
	return &PostgresSignupsRepo{db: db}
}

var _ SignupsRepo = (*PostgresSignupsRepo)(nil)

const signupColumns = `
	signup_id, full_name, mobile, state_id, city_id, community_id,
	block_id, flat_number, status, COALESCE(admin_notes, ''),
	created_at, COALESCE(decided_by, ''), decided_at`

func (r *PostgresSignupsRepo) Create(ctx context.Context, s *domain.Signup) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO signups (
			signup_id, full_name, mobile, state_id, city_id, community_id,
			block_id, flat_number, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.ID, s.FullName, s.Mobile, s.StateID, s.CityID, s.CommunityID,
		s.BlockID, s.FlatNumber, s.Status, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert signup: %w", err)
	}
	return nil
}

func (r *PostgresSignupsRepo) Get(ctx context.Context, signupID string) (*domain.Signup, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT`+signupColumns+` FROM signups WHERE signup_id = $1`, signupID)
	return scanSignup(row)
}

func (r *PostgresSignupsRepo) ListByCommunities(ctx context.Context, communityIDs []string) ([]domain.Signup, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT`+signupColumns+` FROM signups
		 WHERE community_id = ANY($1)
		 ORDER BY created_at DESC`,
		pq.Array(communityIDs),
	)
	if err != nil {
		return nil, fmt.Errorf("list signups: %w", err)
	}
	defer rows.Close()

	var out []domain.Signup
	for rows.Next() {
		s, err := scanSignup(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func (r *PostgresSignupsRepo) HasActiveByMobile(ctx context.Context, mobile string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM signups WHERE mobile = $1 AND status <> $2
		)`,
		mobile, domain.SignupRejected,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check active signup: %w", err)
	}
	return exists, nil
}

func (r *PostgresSignupsRepo) Decide(ctx context.Context, signupID, adminID, status, notes string, decidedAt time.Time) (*domain.Signup, error) {
	// The status predicate makes the decision a compare-and-swap:
	// a repeated or racing decision updates zero rows.
	row := r.db.QueryRowContext(ctx,
		`UPDATE signups
		 SET status = $1, admin_notes = $2, decided_by = $3, decided_at = $4
		 WHERE signup_id = $5 AND status = $6
		 RETURNING`+signupColumns,
		status, notes, adminID, decidedAt, signupID, domain.SignupPending,
	)
	s, err := scanSignup(row)
	if err == ErrNotFound {
		// Distinguish unknown id from already-decided.
		if _, getErr := r.Get(ctx, signupID); getErr == nil {
			return nil, ErrDecided
		}
		return nil, ErrNotFound
	}
	return s, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSignup(row rowScanner) (*domain.Signup, error) {
	var s domain.Signup
	var decidedAt sql.NullTime
	err := row.Scan(
		&s.ID, &s.FullName, &s.Mobile, &s.StateID, &s.CityID, &s.CommunityID,
		&s.BlockID, &s.FlatNumber, &s.Status, &s.AdminNotes,
		&s.CreatedAt, &s.DecidedBy, &decidedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan signup: %w", err)
	}
	if decidedAt.Valid {
		t := decidedAt.Time
		s.DecidedAt = &t
	}
	return &s, nil
}
