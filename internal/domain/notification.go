package domain

import "time"

// Notification is an admin-facing message created by the system, e.g.
// when a signup targets one of the admin's communities. IsRead only
// ever moves false -> true.
type Notification struct {
	ID        string    `json:"id" db:"notification_id"`
	AdminID   string    `json:"adminId" db:"admin_id"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	IsRead    bool      `json:"isRead" db:"is_read"`
}
