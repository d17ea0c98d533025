package repository

import (
	"context"
	"database/sql"
	"fmt"

	"docuprint/internal/domain"
)

type PostgresNotificationsRepo struct {
	db *sql.DB
}

func NewPostgresNotificationsRepo(db *sql.DB) *PostgresNotificationsRepo {
	return &PostgresNotificationsRepo{db: db}
}

var _ NotificationsRepo = (*PostgresNotificationsRepo)(nil)

func (r *PostgresNotificationsRepo) Create(ctx context.Context, n *domain.Notification) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notifications (notification_id, admin_id, message, created_at, is_read)
		 VALUES ($1, $2, $3, $4, $5)`,
		n.ID, n.AdminID, n.Message, n.CreatedAt, n.IsRead,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

func (r *PostgresNotificationsRepo) ListByAdmin(ctx context.Context, adminID string) ([]domain.Notification, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT notification_id, admin_id, message, created_at, is_read
		 FROM notifications
		 WHERE admin_id = $1
		 ORDER BY created_at DESC`,
		adminID,
	)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var out []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.AdminID, &n.Message, &n.CreatedAt, &n.IsRead); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *PostgresNotificationsRepo) MarkRead(ctx context.Context, notificationID, adminID string) (*domain.Notification, error) {
	var n domain.Notification
	err := r.db.QueryRowContext(ctx,
		`UPDATE notifications SET is_read = TRUE
		 WHERE notification_id = $1 AND admin_id = $2
		 RETURNING notification_id, admin_id, message, created_at, is_read`,
		notificationID, adminID,
	).Scan(&n.ID, &n.AdminID, &n.Message, &n.CreatedAt, &n.IsRead)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	return &n, nil
}
