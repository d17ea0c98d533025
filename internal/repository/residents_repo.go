package repository

import (
	"context"

	"docuprint/internal/domain"
)

// ResidentsRepo stores approved resident profiles. Mobile is the
// lookup key for OTP login.
type ResidentsRepo interface {
	Create(ctx context.Context, res *domain.Resident) error
	Get(ctx context.Context, residentID string) (*domain.Resident, error)
	FindByMobile(ctx context.Context, mobile string) (*domain.Resident, error)
}
