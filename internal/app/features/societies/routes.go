// internal/app/features/societies/routes.go
package societies

import "github.com/go-chi/chi/v5"

// MountRoutes registers the society endpoints on the supplied router. The
// paths mirror the original frontend contract, so the add route is
// /add_society rather than a POST on /societies.
func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/societies", h.ServeList)
	r.Post("/add_society", h.ServeAdd)
}
