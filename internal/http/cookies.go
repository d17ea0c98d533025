package httpapi

import (
	"net/http"

	"docuprint/internal/session"
)

const (
	residentCookieName = "dp_resident_session"
	adminCookieName    = "dp_admin_session"
)

// Sessions adapts the token manager to cookie transport. Absent or
// invalid cookies come back as nil sessions, never errors; handlers
// decide whether that means 401.
type Sessions struct {
	manager *session.Manager
}

func NewSessions(manager *session.Manager) *Sessions {
	return &Sessions{manager: manager}
}

func (s *Sessions) setCookie(w http.ResponseWriter, name, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.manager.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// SetResident mints a resident token and sets its cookie.
func (s *Sessions) SetResident(w http.ResponseWriter, residentID, mobile string) error {
	token, err := s.manager.ResidentToken(residentID, mobile)
	if err != nil {
		return err
	}
	s.setCookie(w, residentCookieName, token)
	return nil
}

// SetAdmin mints an admin token and sets its cookie.
func (s *Sessions) SetAdmin(w http.ResponseWriter, adminID string) error {
	token, err := s.manager.AdminToken(adminID)
	if err != nil {
		return err
	}
	s.setCookie(w, adminCookieName, token)
	return nil
}

func (s *Sessions) ClearResident(w http.ResponseWriter) { clearCookie(w, residentCookieName) }
func (s *Sessions) ClearAdmin(w http.ResponseWriter)    { clearCookie(w, adminCookieName) }

// Resident returns the resident session carried by the request, or nil.
func (s *Sessions) Resident(r *http.Request) *session.ResidentSession {
	c, err := r.Cookie(residentCookieName)
	if err != nil {
		return nil
	}
	sess, err := s.manager.ParseResident(c.Value)
	if err != nil {
		return nil
	}
	return sess
}

// Admin returns the admin session carried by the request, or nil.
func (s *Sessions) Admin(r *http.Request) *session.AdminSession {
	c, err := r.Cookie(adminCookieName)
	if err != nil {
		return nil
	}
	sess, err := s.manager.ParseAdmin(c.Value)
	if err != nil {
		return nil
	}
	return sess
}
