// internal/app/features/login/handler.go
package login

import (
	"context"
	"errors"
	"net/http"
	"strings"

	userstore "github.com/campushub/campushub/internal/app/store/users"
	"github.com/campushub/campushub/internal/app/system/apperr"
	"github.com/campushub/campushub/internal/app/system/credentials"
	"github.com/campushub/campushub/internal/app/system/httpjson"
	"github.com/campushub/campushub/internal/app/system/normalize"
	"github.com/campushub/campushub/internal/app/system/timeouts"
	"github.com/campushub/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// UserStore is the slice of the users store that login needs. FindByEmail
// carries the degraded full-scan fallback behind it (see userstore).
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

// Handler serves POST /login.
//
// No session or token is issued on success: callers re-send credentials on
// every privileged action. The platform has no session contract.
type Handler struct {
	Users         UserStore
	Scheme        credentials.Scheme
	AllowedDomain string // institutional email suffix, e.g. "@college.edu"
	DefaultRole   string
	Log           *zap.Logger
}

func NewHandler(users UserStore, scheme credentials.Scheme, allowedDomain, defaultRole string, logger *zap.Logger) *Handler {
	return &Handler{
		Users:         users,
		Scheme:        scheme,
		AllowedDomain: allowedDomain,
		DefaultRole:   defaultRole,
		Log:           logger,
	}
}

var _ UserStore = (*userstore.Store)(nil)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	UID   string `json:"uid"`
}

// Serve handles POST /login.
//
// The domain check runs before anything else, so a wrong-domain email is
// rejected even when no credentials are supplied at all.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.WriteError(w, err)
		return
	}

	email := normalize.Email(req.Email)
	if !strings.HasSuffix(email, h.AllowedDomain) {
		httpjson.WriteError(w, apperr.Newf(apperr.Validation, "Only %s emails are allowed", h.AllowedDomain))
		return
	}
	if email == "" || req.Password == "" {
		httpjson.WriteError(w, apperr.New(apperr.Validation, "Email and password are required"))
		return
	}

	// Medium timeout: the lookup may degrade to a full collection scan.
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.WriteError(w, apperr.New(apperr.NotFound, "User not found"))
			return
		}
		h.Log.Error("login: user lookup failed", zap.String("email", email), zap.Error(err))
		httpjson.WriteError(w, err)
		return
	}

	if u.Password == "" {
		// A user without a stored credential should not exist; refuse
		// rather than treat the empty string as a comparable password.
		h.Log.Error("login: user record has no stored password",
			zap.String("uid", u.ID), zap.String("email", email))
		httpjson.WriteError(w, apperr.New(apperr.Internal, "User data corrupted or not found"))
		return
	}

	if err := h.Scheme.Verify(u.Password, req.Password); err != nil {
		if errors.Is(err, credentials.ErrMismatch) {
			h.Log.Info("login: password mismatch", zap.String("email", email))
			httpjson.WriteError(w, apperr.New(apperr.Auth, "Invalid password"))
			return
		}
		h.Log.Error("login: stored credential unusable",
			zap.String("uid", u.ID), zap.Error(err))
		httpjson.WriteError(w, apperr.New(apperr.Internal, "User data corrupted or not found"))
		return
	}

	role := u.Role
	if role == "" {
		role = h.DefaultRole
	}

	httpjson.Write(w, http.StatusOK, loginResponse{
		Email: u.Email,
		Role:  role,
		UID:   u.ID,
	})
}
