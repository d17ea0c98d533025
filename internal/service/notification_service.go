package service

import (
	"context"

	"go.uber.org/zap"

	"docuprint/internal/apperror"
	"docuprint/internal/domain"
	"docuprint/internal/repository"
)

// NotificationService serves the admin message log.
type NotificationService interface {
	ListForAdmin(ctx context.Context, adminID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, notificationID, adminID string) (*domain.Notification, error)
}

type notificationService struct {
	notifications repository.NotificationsRepo
	logger        *zap.Logger
}

func NewNotificationService(notifications repository.NotificationsRepo, logger *zap.Logger) NotificationService {
	return &notificationService{notifications: notifications, logger: logger}
}

func (s *notificationService) ListForAdmin(ctx context.Context, adminID string) ([]domain.Notification, error) {
	return s.notifications.ListByAdmin(ctx, adminID)
}

func (s *notificationService) MarkRead(ctx context.Context, notificationID, adminID string) (*domain.Notification, error) {
	n, err := s.notifications.MarkRead(ctx, notificationID, adminID)
	if err != nil {
		if err == repository.ErrNotFound {
			// Covers both unknown ids and notifications owned by
			// another admin.
			return nil, apperror.NotFound("notification not found")
		}
		return nil, err
	}
	return n, nil
}
