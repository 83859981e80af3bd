// internal/app/features/register/handler.go
package register

import (
	"context"
	"net/http"

	userstore "github.com/campushub/campushub/internal/app/store/users"
	"github.com/campushub/campushub/internal/app/system/apperr"
	"github.com/campushub/campushub/internal/app/system/credentials"
	"github.com/campushub/campushub/internal/app/system/httpjson"
	"github.com/campushub/campushub/internal/app/system/normalize"
	"github.com/campushub/campushub/internal/app/system/timeouts"
	"github.com/campushub/campushub/internal/domain/models"
	"go.uber.org/zap"
)

// UserStore is the slice of the users store that registration needs.
type UserStore interface {
	EmailTaken(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u models.User) (models.User, error)
}

// Handler serves POST /register.
type Handler struct {
	Users       UserStore
	Scheme      credentials.Scheme
	DefaultRole string
	Log         *zap.Logger
}

// NewHandler wires the handler against the real users collection.
func NewHandler(users UserStore, scheme credentials.Scheme, defaultRole string, logger *zap.Logger) *Handler {
	return &Handler{
		Users:       users,
		Scheme:      scheme,
		DefaultRole: defaultRole,
		Log:         logger,
	}
}

var _ UserStore = (*userstore.Store)(nil)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type registerResponse struct {
	Message string `json:"message"`
	UID     string `json:"uid"`
	Email   string `json:"email"`
	Role    string `json:"role"`
}

// Serve handles POST /register.
//
// The duplicate-email check and the insert are two separate store calls:
// concurrent registrations for the same email can both succeed. That window
// is an accepted property of the platform (see userstore.Create).
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.WriteError(w, err)
		return
	}

	email := normalize.Email(req.Email)
	if email == "" || req.Password == "" {
		httpjson.WriteError(w, apperr.New(apperr.Validation, "Missing email or password"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	taken, err := h.Users.EmailTaken(ctx, email)
	if err != nil {
		h.Log.Error("register: email lookup failed", zap.String("email", email), zap.Error(err))
		httpjson.WriteError(w, err)
		return
	}
	if taken {
		httpjson.WriteError(w, apperr.New(apperr.Conflict, "User with this email already exists"))
		return
	}

	// The scheme may reject the password (e.g. over-length under bcrypt);
	// that is the caller's problem, not ours.
	stored, err := h.Scheme.Create(req.Password)
	if err != nil {
		httpjson.WriteError(w, apperr.Newf(apperr.Validation, "invalid credentials: %v", err))
		return
	}

	role := normalize.Text(req.Role)
	if role == "" {
		role = h.DefaultRole
	}

	created, err := h.Users.Create(ctx, models.User{
		Email:    email,
		Password: stored,
		Role:     role,
	})
	if err != nil {
		h.Log.Error("register: insert failed", zap.String("email", email), zap.Error(err))
		httpjson.WriteError(w, err)
		return
	}

	h.Log.Info("user registered",
		zap.String("uid", created.ID),
		zap.String("email", created.Email),
		zap.String("role", created.Role))

	httpjson.Write(w, http.StatusOK, registerResponse{
		Message: "User registered successfully",
		UID:     created.ID,
		Email:   created.Email,
		Role:    created.Role,
	})
}
