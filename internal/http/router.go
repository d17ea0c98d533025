package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth          *AuthHandler
	Signups       *SignupHandler
	PrintJobs     *PrintJobHandler
	Notifications *NotificationHandler
	Directory     *DirectoryHandler
	Me            *MeHandler
}

// NewRouter mounts the portal API.
func NewRouter(h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/request-otp", h.Auth.RequestOtp)
		r.Post("/auth/verify-otp", h.Auth.VerifyOtp)
		r.Delete("/auth/verify-otp", h.Auth.ResidentLogout)

		r.Post("/resident-signup", h.Signups.Submit)
		r.Get("/communities", h.Directory.Tree)
		r.Get("/me", h.Me.Me)
		r.Get("/resident/profile", h.Me.Profile)

		r.Get("/print-jobs", h.PrintJobs.ListMine)
		r.Post("/print-jobs", h.PrintJobs.Create)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", h.Auth.AdminLogin)
			r.Post("/logout", h.Auth.AdminLogout)

			r.Get("/signups", h.Signups.List)
			r.Post("/signups/{id}/approve", h.Signups.Approve)
			r.Post("/signups/{id}/reject", h.Signups.Reject)

			r.Get("/print-jobs", h.PrintJobs.ListForAdmin)
			r.Get("/print-jobs/export", h.PrintJobs.Export)
			r.Post("/print-jobs/{id}/status", h.PrintJobs.UpdateStatus)

			r.Get("/notifications", h.Notifications.List)
			r.Post("/notifications", h.Notifications.MarkRead)
		})
	})

	return r
}
