package repository

import (
	"context"
	"database/sql"
	"fmt"

	"docuprint/internal/domain"
)

type PostgresResidentsRepo struct {
	db *sql.DB
}

func NewPostgresResidentsRepo(db *sql.DB) *PostgresResidentsRepo {
	return &PostgresResidentsRepo{db: db}
}

var _ ResidentsRepo = (*PostgresResidentsRepo)(nil)

const residentColumns = `
	resident_id, full_name, mobile, state_id, city_id, community_id,
	block_id, flat_number`

func (r *PostgresResidentsRepo) Create(ctx context.Context, res *domain.Resident) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO residents (
			resident_id, full_name, mobile, state_id, city_id,
			community_id, block_id, flat_number
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		res.ID, res.FullName, res.Mobile, res.StateID, res.CityID,
		res.CommunityID, res.BlockID, res.FlatNumber,
	)
	if err != nil {
		return fmt.Errorf("insert resident: %w", err)
	}
	return nil
}

func (r *PostgresResidentsRepo) Get(ctx context.Context, residentID string) (*domain.Resident, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT`+residentColumns+` FROM residents WHERE resident_id = $1`, residentID)
	return scanResident(row)
}

func (r *PostgresResidentsRepo) FindByMobile(ctx context.Context, mobile string) (*domain.Resident, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT`+residentColumns+` FROM residents WHERE mobile = $1`, mobile)
	return scanResident(row)
}

func scanResident(row rowScanner) (*domain.Resident, error) {
	var res domain.Resident
	err := row.Scan(
		&res.ID, &res.FullName, &res.Mobile, &res.StateID, &res.CityID,
		&res.CommunityID, &res.BlockID, &res.FlatNumber,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan resident: %w", err)
	}
	return &res, nil
}
