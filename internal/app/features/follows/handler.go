// internal/app/features/follows/handler.go
package follows

import (
	"context"
	"net/http"

	followstore "github.com/campushub/campushub/internal/app/store/follows"
	"github.com/campushub/campushub/internal/app/system/apperr"
	"github.com/campushub/campushub/internal/app/system/httpjson"
	"github.com/campushub/campushub/internal/app/system/normalize"
	"github.com/campushub/campushub/internal/app/system/timeouts"
	"github.com/campushub/campushub/internal/domain/models"
	"go.uber.org/zap"
)

// FollowStore is the slice of the follows store these handlers need.
type FollowStore interface {
	Create(ctx context.Context, f models.Follow) (models.Follow, error)
	List(ctx context.Context) ([]models.Follow, error)
}

// Handler serves GET /follows and POST /follow.
type Handler struct {
	Follows FollowStore
	Log     *zap.Logger
}

func NewHandler(follows FollowStore, logger *zap.Logger) *Handler {
	return &Handler{Follows: follows, Log: logger}
}

var _ FollowStore = (*followstore.Store)(nil)

type followRequest struct {
	UserID  string `json:"user_id"`
	Society string `json:"society"`
}

// ServeList handles GET /follows. It returns every follow record for every
// user; filtering by user is left to the caller.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	follows, err := h.Follows.List(ctx)
	if err != nil {
		h.Log.Error("follows: list failed", zap.Error(err))
		httpjson.WriteError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, follows)
}

// ServeAdd handles POST /follow. Neither the user id nor the society name is
// checked against its collection, and repeat follows insert repeat records.
func (h *Handler) ServeAdd(w http.ResponseWriter, r *http.Request) {
	var req followRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.WriteError(w, err)
		return
	}

	userID := normalize.Text(req.UserID)
	society := normalize.Text(req.Society)
	if userID == "" || society == "" {
		httpjson.WriteError(w, apperr.New(apperr.Validation, "Missing user_id or society"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := h.Follows.Create(ctx, models.Follow{UserID: userID, Society: society}); err != nil {
		h.Log.Error("follows: insert failed", zap.String("user_id", userID), zap.Error(err))
		httpjson.WriteError(w, err)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Followed society successfully"})
}
