package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"docuprint/internal/service"
)

// NotificationHandler serves the admin message log.
type NotificationHandler struct {
	notifications service.NotificationService
	sessions      *Sessions
	logger        *zap.Logger
}

func NewNotificationHandler(notifications service.NotificationService, sessions *Sessions, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, sessions: sessions, logger: logger}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Admin(r)
	if sess == nil {
		writeUnauthorized(w)
		return
	}

	ns, err := h.notifications.ListForAdmin(r.Context(), sess.AdminID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, ns)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Admin(r)
	if sess == nil {
		writeUnauthorized(w)
		return
	}

	var payload struct {
		NotificationID string `json:"notificationId"`
	}
	if err := readBodyJSON(r, 1<<20, &payload); err != nil || payload.NotificationID == "" {
		writeError(w, http.StatusBadRequest, "Missing notificationId")
		return
	}

	n, err := h.notifications.MarkRead(r.Context(), payload.NotificationID, sess.AdminID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, n)
}
