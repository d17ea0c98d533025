package repository

import (
	"context"
	"time"

	"docuprint/internal/domain"
)

// SignupsRepo stores resident signup requests. Signups are never
// deleted; a decision is applied at most once.
type SignupsRepo interface {
	Create(ctx context.Context, s *domain.Signup) error
	Get(ctx context.Context, signupID string) (*domain.Signup, error)
	// ListByCommunities returns signups in the given communities,
	// newest first.
	ListByCommunities(ctx context.Context, communityIDs []string) ([]domain.Signup, error)
	// HasActiveByMobile reports whether the mobile already has a
	// pending or approved signup. Rejected signups do not count.
	HasActiveByMobile(ctx context.Context, mobile string) (bool, error)
	// Decide moves a pending signup to approved or rejected. The
	// pending check and the write happen under one guard so racing
	// decisions serialize: the loser gets ErrDecided.
	Decide(ctx context.Context, signupID, adminID, status, notes string, decidedAt time.Time) (*domain.Signup, error)
}
