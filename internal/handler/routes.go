package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"govt-appointments-api/internal/middleware"
)

// Routes assembles the full HTTP surface. Officer-only endpoints sit
// behind the role gate; everything else is open, matching the original
// system's trust model. Stored documents are served back by static path.
func (h *Handler) Routes(origin, uploadDir string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(h.log))
	r.Use(middleware.Recoverer(h.log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(middleware.WithAuth(h.secret))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	loginLimiter := middleware.NewRateLimiter(5, 10)

	r.Route("/api", func(r chi.Router) {
		r.Get("/services", h.ListServices)
		r.Get("/services/department/{dept}", h.ListServicesByDepartment)

		r.With(middleware.RateLimit(loginLimiter)).Post("/login", h.Login)

		r.Post("/appointments", h.BookAppointment)
		r.Get("/appointments/user/{userId}", h.ListByUser)
		r.Post("/appointments/{id}/documents", h.AttachDocuments)
		r.Post("/feedback", h.SubmitFeedback)

		// officer surface
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireOfficer)
			r.Get("/appointments/department/{dept}", h.ListByDepartment)
			r.Put("/appointments/{id}/status", h.UpdateStatus)
			r.Get("/analytics", h.Analytics)
		})
	})

	fs := http.FileServer(http.Dir(uploadDir))
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", fs))

	return r
}
