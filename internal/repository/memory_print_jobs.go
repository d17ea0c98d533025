package repository

import (
	"context"
	"sort"
	"sync"

	"docuprint/internal/domain"
)

type MemoryPrintJobsRepo struct {
	mu   sync.RWMutex
	jobs map[string]domain.PrintJob
}

func NewMemoryPrintJobsRepo() *MemoryPrintJobsRepo {
	return &MemoryPrintJobsRepo{jobs: map[string]domain.PrintJob{}}
}

func (r *MemoryPrintJobsRepo) Create(_ context.Context, job *domain.PrintJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = *job
	return nil
}

func (r *MemoryPrintJobsRepo) Get(_ context.Context, jobID string) (*domain.PrintJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	j, ok := r.jobs[jobID]
	if !ok {
		return nil, ErrNotFound
	}
	return &j, nil
}

func (r *MemoryPrintJobsRepo) ListByResident(_ context.Context, residentID string) ([]domain.PrintJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.PrintJob
	for _, j := range r.jobs {
		if j.ResidentID == residentID {
			out = append(out, j)
		}
	}
	sortJobs(out)
	return out, nil
}

func (r *MemoryPrintJobsRepo) List(_ context.Context) ([]domain.PrintJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.PrintJob, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, j)
	}
	sortJobs(out)
	return out, nil
}

func (r *MemoryPrintJobsRepo) UpdateStatus(_ context.Context, jobID, status string) (*domain.PrintJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[jobID]
	if !ok {
		return nil, ErrNotFound
	}
	j.Status = status
	r.jobs[jobID] = j
	return &j, nil
}

func sortJobs(jobs []domain.PrintJob) {
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
}
