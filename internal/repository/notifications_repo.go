package repository

import (
	"context"

	"docuprint/internal/domain"
)

// NotificationsRepo stores admin notifications.
type NotificationsRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
	// ListByAdmin returns the admin's notifications, newest first.
	ListByAdmin(ctx context.Context, adminID string) ([]domain.Notification, error)
	// MarkRead sets isRead on a notification owned by adminID.
	// Marking an already-read notification is a no-op success.
	MarkRead(ctx context.Context, notificationID, adminID string) (*domain.Notification, error)
}
