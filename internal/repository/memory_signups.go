package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"docuprint/internal/domain"
)

type MemorySignupsRepo struct {
	mu      sync.RWMutex
	signups map[string]domain.Signup
}

func NewMemorySignupsRepo() *MemorySignupsRepo {
	return &MemorySignupsRepo{signups: map[string]domain.Signup{}}
}

func (r *MemorySignupsRepo) Create(_ context.Context, s *domain.Signup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.signups[s.ID] = *s
	return nil
}

func (r *MemorySignupsRepo) Get(_ context.Context, signupID string) (*domain.Signup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.signups[signupID]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r *MemorySignupsRepo) ListByCommunities(_ context.Context, communityIDs []string) ([]domain.Signup, error) {
	wanted := make(map[string]struct{}, len(communityIDs))
	for _, id := range communityIDs {
		wanted[id] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Signup
	for _, s := range r.signups {
		if _, ok := wanted[s.CommunityID]; ok {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemorySignupsRepo) HasActiveByMobile(_ context.Context, mobile string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.signups {
		if s.Mobile == mobile && s.Status != domain.SignupRejected {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemorySignupsRepo) Decide(_ context.Context, signupID, adminID, status, notes string, decidedAt time.Time) (*domain.Signup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.signups[signupID]
	if !ok {
		return nil, ErrNotFound
	}
	if s.Status != domain.SignupPending {
		return nil, ErrDecided
	}
	s.Status = status
	s.AdminNotes = notes
	s.DecidedBy = adminID
	s.DecidedAt = &decidedAt
	r.signups[signupID] = s
	return &s, nil
}
