package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"docuprint/internal/service"
)

// SignupHandler covers public signup submission and the admin review
// endpoints.
type SignupHandler struct {
	signups  service.SignupService
	sessions *Sessions
	logger   *zap.Logger
}

func NewSignupHandler(signups service.SignupService, sessions *Sessions, logger *zap.Logger) *SignupHandler {
	return &SignupHandler{signups: signups, sessions: sessions, logger: logger}
}

// Submit accepts a resident access request.
func (h *SignupHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req service.CreateSignupRequest
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	signup, err := h.signups.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{
		Data:    signup,
		Message: "Signup submitted for approval",
	})
}

// List returns the signups in the admin's communities.
func (h *SignupHandler) List(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Admin(r)
	if sess == nil {
		writeUnauthorized(w)
		return
	}

	signups, err := h.signups.ListForAdmin(r.Context(), sess.AdminID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, signups)
}

// Approve decides a pending signup and creates the resident profile.
func (h *SignupHandler) Approve(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Admin(r)
	if sess == nil {
		writeUnauthorized(w)
		return
	}

	var payload struct {
		Notes string `json:"notes"`
	}
	_ = readBodyJSON(r, 1<<20, &payload)

	signup, resident, err := h.signups.Approve(r.Context(), chi.URLParam(r, "id"), sess.AdminID, payload.Notes)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]any{
		"signup":   signup,
		"resident": resident,
	})
}

// Reject decides a pending signup without creating a profile.
func (h *SignupHandler) Reject(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Admin(r)
	if sess == nil {
		writeUnauthorized(w)
		return
	}

	var payload struct {
		Notes string `json:"notes"`
	}
	_ = readBodyJSON(r, 1<<20, &payload)

	signup, err := h.signups.Reject(r.Context(), chi.URLParam(r, "id"), sess.AdminID, payload.Notes)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, signup)
}
