// internal/app/features/societies/handler.go
package societies

import (
	"context"
	"net/http"

	societystore "github.com/campushub/campushub/internal/app/store/societies"
	"github.com/campushub/campushub/internal/app/system/apperr"
	"github.com/campushub/campushub/internal/app/system/httpjson"
	"github.com/campushub/campushub/internal/app/system/normalize"
	"github.com/campushub/campushub/internal/app/system/timeouts"
	"github.com/campushub/campushub/internal/domain/models"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// SocietyStore is the slice of the societies store these handlers need.
type SocietyStore interface {
	Create(ctx context.Context, soc models.Society) (models.Society, error)
	List(ctx context.Context) ([]models.Society, error)
}

// Handler serves GET /societies and POST /add_society.
type Handler struct {
	Societies SocietyStore
	Log       *zap.Logger
}

func NewHandler(societies SocietyStore, logger *zap.Logger) *Handler {
	return &Handler{Societies: societies, Log: logger}
}

var _ SocietyStore = (*societystore.Store)(nil)

// sanitize strips markup from free-text fields before storage; the bundled
// frontend renders them directly.
var sanitize = bluemonday.StrictPolicy()

type addSocietyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ServeList handles GET /societies: a full unordered scan, no pagination.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	societies, err := h.Societies.List(ctx)
	if err != nil {
		h.Log.Error("societies: list failed", zap.Error(err))
		httpjson.WriteError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, societies)
}

// ServeAdd handles POST /add_society. No uniqueness on names; every accepted
// request inserts a record.
func (h *Handler) ServeAdd(w http.ResponseWriter, r *http.Request) {
	var req addSocietyRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.WriteError(w, err)
		return
	}

	name := normalize.Text(sanitize.Sanitize(req.Name))
	description := normalize.Text(sanitize.Sanitize(req.Description))
	if name == "" || description == "" {
		httpjson.WriteError(w, apperr.New(apperr.Validation, "Missing name or description"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := h.Societies.Create(ctx, models.Society{Name: name, Description: description}); err != nil {
		h.Log.Error("societies: insert failed", zap.String("name", name), zap.Error(err))
		httpjson.WriteError(w, err)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Society added successfully"})
}
