// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/jsamuelsen11/project-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/project-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/project-service/internal/platform/config"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Projects    *handlers.ProjectHandler
	Invitations *handlers.InvitationHandler
	Health      *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// The given middleware runs first, in order, on every route. CORS follows,
// enabled only when cfg.CORSOrigins is non-empty. The /api/v1 routes are
// additionally bounded by cfg.WriteTimeout and require an acting user.
func NewRouter(h Handlers, cfg config.ServerConfig, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Options{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
			AllowedHeaders: []string{"Origin", "Content-Type", "Accept", middleware.HeaderUserID, "X-Request-ID", "X-Correlation-ID"},
			ExposedHeaders: []string{"X-Request-ID", "X-Correlation-ID"},
		}).Handler)
	}

	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.WriteTimeout > 0 {
			r.Use(chimw.Timeout(cfg.WriteTimeout))
		}
		r.Use(middleware.ActingUser())

		r.Get("/projects", h.Projects.ListProjects)
		r.Post("/projects", h.Projects.CreateProject)
		r.Post("/projects/filter", h.Projects.FilterProjects)
		r.Post("/projects/batch", h.Projects.BatchProjects)
		r.Get("/projects/{id}", h.Projects.GetProject)
		r.Patch("/projects/{id}", h.Projects.UpdateProject)
		r.Post("/projects/{id}/vacancies", h.Projects.CreateVacancy)

		r.Post("/vacancies/filter", h.Projects.FilterVacancies)

		r.Get("/invitations", h.Invitations.ListInvitations)
		r.Post("/invitations", h.Invitations.SendInvitation)
		r.Post("/invitations/{id}/accept", h.Invitations.AcceptInvitation)
		r.Post("/invitations/{id}/decline", h.Invitations.DeclineInvitation)
	})

	return r
}
