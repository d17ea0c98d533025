package repository

import (
	"context"
	"sync"

	"docuprint/internal/domain"
)

type MemoryResidentsRepo struct {
	mu       sync.RWMutex
	byID     map[string]domain.Resident
	byMobile map[string]domain.Resident
}

func NewMemoryResidentsRepo() *MemoryResidentsRepo {
	return &MemoryResidentsRepo{
		byID:     map[string]domain.Resident{},
		byMobile: map[string]domain.Resident{},
	}
}

func (r *MemoryResidentsRepo) Create(_ context.Context, res *domain.Resident) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[res.ID] = *res
	r.byMobile[res.Mobile] = *res
	return nil
}

func (r *MemoryResidentsRepo) Get(_ context.Context, residentID string) (*domain.Resident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.byID[residentID]
	if !ok {
		return nil, ErrNotFound
	}
	return &res, nil
}

func (r *MemoryResidentsRepo) FindByMobile(_ context.Context, mobile string) (*domain.Resident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.byMobile[mobile]
	if !ok {
		return nil, ErrNotFound
	}
	return &res, nil
}
