package repository

import (
	"context"
	"sort"
	"sync"

	"docuprint/internal/domain"
)

type MemoryNotificationsRepo struct {
	mu            sync.RWMutex
	notifications map[string]domain.Notification
}

func NewMemoryNotificationsRepo() *MemoryNotificationsRepo {
	return &MemoryNotificationsRepo{notifications: map[string]domain.Notification{}}
}

func (r *MemoryNotificationsRepo) Create(_ context.Context, n *domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications[n.ID] = *n
	return nil
}

func (r *MemoryNotificationsRepo) ListByAdmin(_ context.Context, adminID string) ([]domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Notification
	for _, n := range r.notifications {
		if n.AdminID == adminID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryNotificationsRepo) MarkRead(_ context.Context, notificationID, adminID string) (*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notifications[notificationID]
	if !ok || n.AdminID != adminID {
		// Ownership failures look identical to unknown ids.
		return nil, ErrNotFound
	}
	n.IsRead = true
	r.notifications[notificationID] = n
	return &n, nil
}
