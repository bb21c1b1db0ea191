// internal/app/features/metrics/routes.go
package metrics

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter mounted at "/metrics".
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Serve)
	return r
}
