package login_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campushub/campushub/internal/app/features/login"
	"github.com/campushub/campushub/internal/app/system/credentials"
	"github.com/campushub/campushub/internal/domain/models"
	"github.com/campushub/campushub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// fakeUserStore implements login.UserStore in memory.
type fakeUserStore struct {
	user models.User
	err  error
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	if f.err != nil {
		return models.User{}, f.err
	}
	return f.user, nil
}

func newHandler(store *fakeUserStore) *login.Handler {
	return login.NewHandler(store, credentials.Plaintext{}, "@college.edu", "student", zap.NewNop())
}

func loginBody(email, password string) map[string]string {
	return map[string]string{"email": email, "password": password}
}

func TestServe_Success(t *testing.T) {
	store := &fakeUserStore{user: models.User{
		ID:       "uid-1",
		Email:    "alice@college.edu",
		Password: "secret",
		Role:     "admin",
	}}
	h := newHandler(store)

	req := testutil.NewJSONRequest(t, "POST", "/login", loginBody("Alice@College.edu", "secret"))
	rec := httptest.NewRecorder()

	h.Serve(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var resp struct {
		Email string `json:"email"`
		Role  string `json:"role"`
		UID   string `json:"uid"`
	}
	testutil.DecodeBody(t, rec, &resp)

	if resp.Email != "alice@college.edu" {
		t.Errorf("email: got %q, want %q", resp.Email, "alice@college.edu")
	}
	if resp.Role != "admin" {
		t.Errorf("role: got %q, want %q", resp.Role, "admin")
	}
	if resp.UID != "uid-1" {
		t.Errorf("uid: got %q, want %q", resp.UID, "uid-1")
	}
}

func TestServe_WrongDomain(t *testing.T) {
	h := newHandler(&fakeUserStore{})

	req := testutil.NewJSONRequest(t, "POST", "/login", loginBody("alice@gmail.com", "secret"))
	rec := httptest.NewRecorder()

	h.Serve(rec, req)

	testutil.AssertStatus(t, rec, http.StatusBadRequest)
	testutil.AssertErrorBody(t, rec, "Only @college.edu emails are allowed")
}

func TestServe_DomainCheckedBeforePresence(t *testing.T) {
	// An empty email fails the domain check, not the presence check.
	h := newHandler(&fakeUserStore{})

	req := testutil.NewJSONRequest(t, "POST", "/login", loginBody("", ""))
	rec := httptest.NewRecorder()

	h.Serve(rec, req)

	testutil.AssertStatus(t, rec, http.StatusBadRequest)
	testutil.AssertErrorBody(t, rec, "Only @college.edu emails are allowed")
}

func TestServe_MissingPassword(t *testing.T) {
	h := newHandler(&fakeUserStore{})

	req := testutil.NewJSONRequest(t, "POST", "/login", loginBody("alice@college.edu", ""))
	rec := httptest.NewRecorder()

	h.Serve(rec, req)

	testutil.AssertStatus(t, rec, http.StatusBadRequest)
	testutil.AssertErrorBody(t, rec, "Email and password are required")
}

func TestServe_UserNotFound(t *testing.T) {
	h := newHandler(&fakeUserStore{err: mongo.ErrNoDocuments})

	req := testutil.NewJSONRequest(t, "POST", "/login", loginBody("ghost@college.edu", "pw"))
	rec := httptest.NewRecorder()

	h.Serve(rec, req)

	testutil.AssertStatus(t, rec, http.StatusNotFound)
	testutil.AssertErrorBody(t, rec, "User not found")
}

func TestServe_WrongPassword(t *testing.T) {
	store := &fakeUserStore{user: models.User{
		ID:       "uid-1",
		Email:    "alice@college.edu",
		Password: "secret",
	}}
	h := newHandler(store)

	req := testutil.NewJSONRequest(t, "POST", "/login", loginBody("alice@college.edu", "wrong"))
	rec := httptest.NewRecorder()

	h.Serve(rec, req)

	testutil.AssertStatus(t, rec, http.StatusUnauthorized)
	testutil.AssertErrorBody(t, rec, "Invalid password")
}

func TestServe_EmptyStoredPassword(t *testing.T) {
	store := &fakeUserStore{user: models.User{
		ID:    "uid-1",
		Email: "alice@college.edu",
	}}
	h := newHandler(store)

	req := testutil.NewJSONRequest(t, "POST", "/login", loginBody("alice@college.edu", "anything"))
	rec := httptest.NewRecorder()

	h.Serve(rec, req)

	testutil.AssertStatus(t, rec, http.StatusInternalServerError)
	testutil.AssertErrorBody(t, rec, "User data corrupted or not found")
}

func TestServe_MissingRoleDefaults(t *testing.T) {
	store := &fakeUserStore{user: models.User{
		ID:       "uid-1",
		Email:    "legacy@college.edu",
		Password: "pw",
	}}
	h := newHandler(store)

	req := testutil.NewJSONRequest(t, "POST", "/login", loginBody("legacy@college.edu", "pw"))
	rec := httptest.NewRecorder()

	h.Serve(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var resp struct {
		Role string `json:"role"`
	}
	testutil.DecodeBody(t, rec, &resp)
	if resp.Role != "student" {
		t.Errorf("role: got %q, want default %q", resp.Role, "student")
	}
}

func TestServe_BcryptScheme(t *testing.T) {
	hash, err := credentials.Bcrypt{Cost: 4}.Create("secret")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	store := &fakeUserStore{user: models.User{
		ID:       "uid-1",
		Email:    "alice@college.edu",
		Password: hash,
	}}
	h := login.NewHandler(store, credentials.Bcrypt{}, "@college.edu", "student", zap.NewNop())

	req := testutil.NewJSONRequest(t, "POST", "/login", loginBody("alice@college.edu", "secret"))
	rec := httptest.NewRecorder()

	h.Serve(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)
}
