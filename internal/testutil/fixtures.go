// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/campushub/campushub/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user document directly, bypassing the store. Email is
// stored as given; pass an already-normalized value unless the test is
// exercising normalization.
func (f *Fixtures) CreateUser(ctx context.Context, email, password, role string) models.User {
	f.t.Helper()

	user := models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  password,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateSociety inserts a society document directly.
func (f *Fixtures) CreateSociety(ctx context.Context, name, description string) models.Society {
	f.t.Helper()

	soc := models.Society{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: description,
	}
	if _, err := f.db.Collection("societies").InsertOne(ctx, soc); err != nil {
		f.t.Fatalf("failed to create test society: %v", err)
	}
	return soc
}

// CreateEvent inserts an event document directly.
func (f *Fixtures) CreateEvent(ctx context.Context, title, society, date string) models.Event {
	f.t.Helper()

	ev := models.Event{
		ID:      primitive.NewObjectID(),
		Title:   title,
		Society: society,
		Date:    date,
	}
	if _, err := f.db.Collection("events").InsertOne(ctx, ev); err != nil {
		f.t.Fatalf("failed to create test event: %v", err)
	}
	return ev
}

// CreateFollow inserts a follow document directly.
func (f *Fixtures) CreateFollow(ctx context.Context, userID, society string) models.Follow {
	f.t.Helper()

	fl := models.Follow{
		ID:      primitive.NewObjectID(),
		UserID:  userID,
		Society: society,
	}
	if _, err := f.db.Collection("follows").InsertOne(ctx, fl); err != nil {
		f.t.Fatalf("failed to create test follow: %v", err)
	}
	return fl
}
