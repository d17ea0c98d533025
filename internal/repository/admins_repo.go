package repository

import (
	"context"

	"docuprint/internal/domain"
)

// AdminsRepo serves the seeded admin accounts.
type AdminsRepo interface {
	Get(ctx context.Context, adminID string) (*domain.Admin, error)
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
	// ListByCommunity returns the admins assigned to a community,
	// the fan-out targets for new signups there.
	ListByCommunity(ctx context.Context, communityID string) ([]domain.Admin, error)
}
