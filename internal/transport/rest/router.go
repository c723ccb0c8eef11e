package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mybayani/emergency-backend/internal/transport/middleware"
)

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Emergency *EmergencyHandler
	Directory *DirectoryHandler
	Location  *LocationHandler
	Auth      *AuthHandler
	Admin     *AdminHandler
}

// NewRouter builds the HTTP routing tree. Global middlewares run in the
// order given; health checks are mounted outside of them.
func NewRouter(h Handlers, mws ...middleware.Middleware) http.Handler {
	r := chi.NewRouter()

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Group(func(r chi.Router) {
		for _, mw := range mws {
			r.Use(mw)
		}

		r.Route("/api/v1", func(r chi.Router) {
			r.Route("/emergency", func(r chi.Router) {
				r.Post("/call", h.Emergency.StoreCall)
				r.Get("/contacts", h.Emergency.ListContacts)
				r.Get("/contacts/{id}", h.Emergency.GetContact)
			})

			r.Route("/services", func(r chi.Router) {
				r.Get("/catalog", h.Directory.Catalog)
				r.Get("/filters", h.Directory.Filters)
				r.Get("/search", h.Directory.Search)
				r.Get("/nearest/{type}", h.Directory.Nearest)
				r.Post("/", h.Directory.Add)
				r.Get("/{id}", h.Directory.Get)
				r.Post("/{id}/reports", h.Directory.Report)
			})

			r.Route("/location", func(r chi.Router) {
				r.Get("/reverse", h.Location.Reverse)
				r.Get("/default", h.Location.Default)
			})

			r.Route("/auth", func(r chi.Router) {
				r.Post("/signup", h.Auth.SignUp)
				r.Post("/signin", h.Auth.SignIn)
				r.Get("/me", h.Auth.Me)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Patch("/services/{id}/verification", h.Admin.SetVerification)
				r.Get("/reports", h.Admin.ListReports)
			})
		})
	})

	return r
}
