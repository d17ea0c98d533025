package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"docuprint/internal/service"
)

// PrintJobHandler covers the resident job endpoints and the admin
// tracking endpoints.
type PrintJobHandler struct {
	jobs     service.PrintJobService
	sessions *Sessions
	logger   *zap.Logger
}

func NewPrintJobHandler(jobs service.PrintJobService, sessions *Sessions, logger *zap.Logger) *PrintJobHandler {
	return &PrintJobHandler{jobs: jobs, sessions: sessions, logger: logger}
}

// ListMine returns the calling resident's jobs.
func (h *PrintJobHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Resident(r)
	if sess == nil {
		writeUnauthorized(w)
		return
	}

	jobs, err := h.jobs.ListForResident(r.Context(), sess.ResidentID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, jobs)
}

// Create submits a job for the calling resident. The resident id comes
// from the session, never from the body.
func (h *PrintJobHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Resident(r)
	if sess == nil {
		writeUnauthorized(w)
		return
	}

	var req service.CreatePrintJobRequest
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	job, err := h.jobs.Create(r.Context(), sess.ResidentID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusCreated, job)
}

// ListForAdmin returns jobs from residents of the admin's communities.
func (h *PrintJobHandler) ListForAdmin(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Admin(r)
	if sess == nil {
		writeUnauthorized(w)
		return
	}

	jobs, err := h.jobs.ListForAdmin(r.Context(), sess.AdminID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, jobs)
}

// UpdateStatus overwrites a job status.
func (h *PrintJobHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Admin(r)
	if sess == nil {
		writeUnauthorized(w)
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := readBodyJSON(r, 1<<20, &payload); err != nil || payload.Status == "" {
		writeError(w, http.StatusBadRequest, "Missing status")
		return
	}

	job, err := h.jobs.UpdateStatus(r.Context(), chi.URLParam(r, "id"), sess.AdminID, payload.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, job)
}

// Export streams the admin's community jobs as an XLSX workbook.
func (h *PrintJobHandler) Export(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Admin(r)
	if sess == nil {
		writeUnauthorized(w)
		return
	}

	jobs, err := h.jobs.ListForAdmin(r.Context(), sess.AdminID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	data, err := GeneratePrintJobExport(jobs)
	if err != nil {
		h.logger.Error("Print job export failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	filename := fmt.Sprintf("print-jobs-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	_, _ = w.Write(data)
}
