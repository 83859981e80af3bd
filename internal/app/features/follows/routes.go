// internal/app/features/follows/routes.go
package follows

import "github.com/go-chi/chi/v5"

// MountRoutes registers the follow endpoints on the supplied router.
func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/follows", h.ServeList)
	r.Post("/follow", h.ServeAdd)
}
