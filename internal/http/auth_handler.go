package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"docuprint/internal/repository"
	"docuprint/internal/service"
)

// AuthHandler covers resident OTP login and admin credential login.
type AuthHandler struct {
	otp       service.OtpService
	residents repository.ResidentsRepo
	admins    repository.AdminsRepo
	sessions  *Sessions
	logger    *zap.Logger
}

func NewAuthHandler(
	otp service.OtpService,
	residents repository.ResidentsRepo,
	admins repository.AdminsRepo,
	sessions *Sessions,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		otp:       otp,
		residents: residents,
		admins:    admins,
		sessions:  sessions,
		logger:    logger,
	}
}

// RequestOtp issues a login code for an approved resident. The demo
// contract returns the code in the body instead of relying on SMS.
func (h *AuthHandler) RequestOtp(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Mobile string `json:"mobile"`
	}
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	code, err := h.otp.Request(r.Context(), payload.Mobile)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Data:    map[string]string{"mobile": payload.Mobile, "code": code},
		Message: "OTP generated. In production this would be sent via SMS. For demo purposes it is returned here.",
	})
}

// VerifyOtp checks the code and opens a resident session.
func (h *AuthHandler) VerifyOtp(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Mobile string `json:"mobile"`
		Code   string `json:"code"`
	}
	if err := readBodyJSON(r, 1<<20, &payload); err != nil || payload.Mobile == "" || payload.Code == "" {
		writeError(w, http.StatusBadRequest, "Mobile and OTP are required")
		return
	}

	resident, err := h.residents.FindByMobile(r.Context(), payload.Mobile)
	if err != nil {
		writeError(w, http.StatusNotFound, "Resident not found")
		return
	}

	ok, err := h.otp.Verify(r.Context(), payload.Mobile, payload.Code)
	if err != nil {
		h.logger.Error("OTP verification failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid or expired OTP")
		return
	}

	if err := h.sessions.SetResident(w, resident.ID, resident.Mobile); err != nil {
		h.logger.Error("Failed to mint resident session", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeData(w, http.StatusOK, map[string]string{
		"residentId": resident.ID,
		"mobile":     resident.Mobile,
	})
}

// ResidentLogout clears the resident cookie.
func (h *AuthHandler) ResidentLogout(w http.ResponseWriter, _ *http.Request) {
	h.sessions.ClearResident(w)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// AdminLogin checks seeded credentials and opens an admin session.
// Plaintext comparison mirrors the demo deployment.
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	admin, err := h.admins.FindByEmail(r.Context(), payload.Email)
	if err != nil || admin.Password != payload.Password {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := h.sessions.SetAdmin(w, admin.ID); err != nil {
		h.logger.Error("Failed to mint admin session", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeData(w, http.StatusOK, map[string]string{"adminId": admin.ID})
}

// AdminLogout clears the admin cookie.
func (h *AuthHandler) AdminLogout(w http.ResponseWriter, _ *http.Request) {
	h.sessions.ClearAdmin(w)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
