package repository

import (
	"context"
	"sort"
	"strings"

	"docuprint/internal/domain"
)

// MemoryAdminsRepo holds the seed accounts. Static after construction.
type MemoryAdminsRepo struct {
	byID    map[string]domain.Admin
	byEmail map[string]domain.Admin
}

func NewMemoryAdminsRepo(admins []domain.Admin) *MemoryAdminsRepo {
	r := &MemoryAdminsRepo{
		byID:    map[string]domain.Admin{},
		byEmail: map[string]domain.Admin{},
	}
	for _, a := range admins {
		r.byID[a.ID] = a
		r.byEmail[strings.ToLower(a.Email)] = a
	}
	return r
}

func (r *MemoryAdminsRepo) Get(_ context.Context, adminID string) (*domain.Admin, error) {
	a, ok := r.byID[adminID]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (r *MemoryAdminsRepo) FindByEmail(_ context.Context, email string) (*domain.Admin, error) {
	a, ok := r.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (r *MemoryAdminsRepo) ListByCommunity(_ context.Context, communityID string) ([]domain.Admin, error) {
	var out []domain.Admin
	for _, a := range r.byID {
		if a.OwnsCommunity(communityID) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
