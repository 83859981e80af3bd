// internal/app/features/events/handler.go
package events

import (
	"context"
	"net/http"

	eventstore "github.com/campushub/campushub/internal/app/store/events"
	"github.com/campushub/campushub/internal/app/system/apperr"
	"github.com/campushub/campushub/internal/app/system/httpjson"
	"github.com/campushub/campushub/internal/app/system/normalize"
	"github.com/campushub/campushub/internal/app/system/timeouts"
	"github.com/campushub/campushub/internal/domain/models"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// EventStore is the slice of the events store these handlers need.
type EventStore interface {
	Create(ctx context.Context, ev models.Event) (models.Event, error)
	List(ctx context.Context) ([]models.Event, error)
}

// Handler serves GET /events and POST /add_event.
type Handler struct {
	Events EventStore
	Log    *zap.Logger
}

func NewHandler(events EventStore, logger *zap.Logger) *Handler {
	return &Handler{Events: events, Log: logger}
}

var _ EventStore = (*eventstore.Store)(nil)

var sanitize = bluemonday.StrictPolicy()

type addEventRequest struct {
	Title   string `json:"title"`
	Society string `json:"society"`
	Date    string `json:"date"`
}

// ServeList handles GET /events: a full unordered scan, no pagination.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	events, err := h.Events.List(ctx)
	if err != nil {
		h.Log.Error("events: list failed", zap.Error(err))
		httpjson.WriteError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, events)
}

// ServeAdd handles POST /add_event. All three fields are required; a
// missing one is a clean validation failure, never a 500. The date is
// stored verbatim; its format is the frontend's business.
func (h *Handler) ServeAdd(w http.ResponseWriter, r *http.Request) {
	var req addEventRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.WriteError(w, err)
		return
	}

	title := normalize.Text(sanitize.Sanitize(req.Title))
	society := normalize.Text(sanitize.Sanitize(req.Society))
	date := normalize.Text(req.Date)
	if title == "" || society == "" || date == "" {
		httpjson.WriteError(w, apperr.New(apperr.Validation, "Missing title, society, or date"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := h.Events.Create(ctx, models.Event{Title: title, Society: society, Date: date}); err != nil {
		h.Log.Error("events: insert failed", zap.String("title", title), zap.Error(err))
		httpjson.WriteError(w, err)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Event added successfully"})
}
