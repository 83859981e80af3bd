// internal/app/features/registrations/handler.go
package registrations

import (
	"context"
	"net/http"

	registrationstore "github.com/campushub/campushub/internal/app/store/registrations"
	"github.com/campushub/campushub/internal/app/system/apperr"
	"github.com/campushub/campushub/internal/app/system/httpjson"
	"github.com/campushub/campushub/internal/app/system/normalize"
	"github.com/campushub/campushub/internal/app/system/timeouts"
	"github.com/campushub/campushub/internal/domain/models"
	"go.uber.org/zap"
)

// RegistrationStore is the slice of the registrations store this handler
// needs. Submissions are write-only; there is no read endpoint.
type RegistrationStore interface {
	Create(ctx context.Context, reg models.SocietyRegistration) (models.SocietyRegistration, error)
}

// Handler serves POST /society_register.
type Handler struct {
	Registrations RegistrationStore
	Log           *zap.Logger
}

func NewHandler(registrations RegistrationStore, logger *zap.Logger) *Handler {
	return &Handler{Registrations: registrations, Log: logger}
}

var _ RegistrationStore = (*registrationstore.Store)(nil)

type submitRequest struct {
	UserID    string         `json:"user_id"`
	SocietyID string         `json:"society_id"`
	FormData  map[string]any `json:"form_data"`
}

// Serve handles POST /society_register. The form payload is stored as an
// opaque document; the timestamp is assigned server side at insert.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.WriteError(w, err)
		return
	}

	userID := normalize.Text(req.UserID)
	societyID := normalize.Text(req.SocietyID)
	if userID == "" || societyID == "" {
		httpjson.WriteError(w, apperr.New(apperr.Validation, "Missing user_id or society_id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	reg := models.SocietyRegistration{
		UserID:    userID,
		SocietyID: societyID,
		FormData:  req.FormData,
	}
	if _, err := h.Registrations.Create(ctx, reg); err != nil {
		h.Log.Error("registrations: insert failed",
			zap.String("user_id", userID),
			zap.String("society_id", societyID),
			zap.Error(err))
		httpjson.WriteError(w, err)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Registration submitted successfully"})
}
