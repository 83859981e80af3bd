// internal/app/features/registrations/routes.go
package registrations

import "github.com/go-chi/chi/v5"

// MountRoutes registers POST /society_register on the supplied router.
func MountRoutes(r chi.Router, h *Handler) {
	r.Post("/society_register", h.Serve)
}
