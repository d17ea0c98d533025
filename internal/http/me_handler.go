package httpapi

import (
	"net/http"

	"docuprint/internal/repository"
	"docuprint/internal/service"
)

// MeHandler probes the caller's session and serves the resident
// profile endpoint.
type MeHandler struct {
	jobs      service.PrintJobService
	residents repository.ResidentsRepo
	sessions  *Sessions
}

func NewMeHandler(jobs service.PrintJobService, residents repository.ResidentsRepo, sessions *Sessions) *MeHandler {
	return &MeHandler{jobs: jobs, residents: residents, sessions: sessions}
}

// Me reports who the caller is. Anonymous callers get a null identity
// instead of an error.
func (h *MeHandler) Me(w http.ResponseWriter, r *http.Request) {
	if sess := h.sessions.Resident(r); sess != nil {
		jobs, err := h.jobs.ListForResident(r.Context(), sess.ResidentID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"data": sess,
			"type": "resident",
			"jobs": jobs,
		})
		return
	}
	if sess := h.sessions.Admin(r); sess != nil {
		writeJSON(w, http.StatusOK, map[string]any{
			"data": sess,
			"type": "admin",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"data": nil,
		"type": "anonymous",
	})
}

// Profile returns the calling resident's profile.
func (h *MeHandler) Profile(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Resident(r)
	if sess == nil {
		writeUnauthorized(w)
		return
	}

	resident, err := h.residents.FindByMobile(r.Context(), sess.Mobile)
	if err != nil {
		writeError(w, http.StatusNotFound, "Resident not found")
		return
	}
	writeData(w, http.StatusOK, resident)
}
