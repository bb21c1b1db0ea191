// internal/app/features/settings/routes.go
package settings

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter mounted at "/settings". CSRF protection is
// applied by the caller.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeSettings)
	r.Post("/", h.HandleSettings)
	return r
}
