// internal/app/features/events/routes.go
package events

import "github.com/go-chi/chi/v5"

// MountRoutes registers the event endpoints on the supplied router.
func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/events", h.ServeList)
	r.Post("/add_event", h.ServeAdd)
}
