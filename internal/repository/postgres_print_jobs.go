package repository

import (
	"context"
	"database/sql"
	"fmt"

	"docuprint/internal/domain"
)

type PostgresPrintJobsRepo struct {
	db *sql.DB
}

func NewPostgresPrintJobsRepo(db *sql.DB) *PostgresPrintJobsRepo {
	return &PostgresPrintJobsRepo{db: db}
}

var _ PrintJobsRepo = (*PostgresPrintJobsRepo)(nil)

const printJobColumns = `
	job_id, resident_id, title, pages, copies, color_mode, paper_size,
	COALESCE(notes, ''), file_name, file_size, status, created_at`

func (r *PostgresPrintJobsRepo) Create(ctx context.Context, job *domain.PrintJob) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO print_jobs (
			job_id, resident_id, title, pages, copies, color_mode,
			paper_size, notes, file_name, file_size, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		job.ID, job.ResidentID, job.Title, job.Pages, job.Copies, job.ColorMode,
		job.PaperSize, job.Notes, job.FileName, job.FileSize, job.Status, job.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert print job: %w", err)
	}
	return nil
}

func (r *PostgresPrintJobsRepo) Get(ctx context.Context, jobID string) (*domain.PrintJob, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT`+printJobColumns+` FROM print_jobs WHERE job_id = $1`, jobID)
	return scanPrintJob(row)
}

func (r *PostgresPrintJobsRepo) ListByResident(ctx context.Context, residentID string) ([]domain.PrintJob, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT`+printJobColumns+` FROM print_jobs
		 WHERE resident_id = $1
		 ORDER BY created_at DESC`,
		residentID,
	)
	if err != nil {
		return nil, fmt.Errorf("list print jobs by resident: %w", err)
	}
	defer rows.Close()
	return collectPrintJobs(rows)
}

func (r *PostgresPrintJobsRepo) List(ctx context.Context) ([]domain.PrintJob, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT`+printJobColumns+` FROM print_jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list print jobs: %w", err)
	}
	defer rows.Close()
	return collectPrintJobs(rows)
}

func (r *PostgresPrintJobsRepo) UpdateStatus(ctx context.Context, jobID, status string) (*domain.PrintJob, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE print_jobs SET status = $1 WHERE job_id = $2
		 RETURNING`+printJobColumns,
		status, jobID,
	)
	return scanPrintJob(row)
}

func collectPrintJobs(rows *sql.Rows) ([]domain.PrintJob, error) {
	var out []domain.PrintJob
	for rows.Next() {
		j, err := scanPrintJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *j)
	}
	return out, rows.Err()
}

func scanPrintJob(row rowScanner) (*domain.PrintJob, error) {
	var j domain.PrintJob
	err := row.Scan(
		&j.ID, &j.ResidentID, &j.Title, &j.Pages, &j.Copies, &j.ColorMode,
		&j.PaperSize, &j.Notes, &j.FileName, &j.FileSize, &j.Status, &j.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan print job: %w", err)
	}
	return &j, nil
}
