package repository

import (
	"context"

	"docuprint/internal/domain"
)

// PrintJobsRepo stores print jobs. Jobs are never deleted; only their
// status changes after creation.
type PrintJobsRepo interface {
	Create(ctx context.Context, job *domain.PrintJob) error
	Get(ctx context.Context, jobID string) (*domain.PrintJob, error)
	// ListByResident returns a resident's jobs, newest first.
	ListByResident(ctx context.Context, residentID string) ([]domain.PrintJob, error)
	// List returns every job, newest first. The community scoping for
	// admins happens in the service via resident lookup.
	List(ctx context.Context) ([]domain.PrintJob, error)
	UpdateStatus(ctx context.Context, jobID, status string) (*domain.PrintJob, error)
}
