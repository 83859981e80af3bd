// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"time"

	"github.com/campushub/campushub/internal/app/system/normalize"
	"github.com/campushub/campushub/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// EmailTaken reports whether any user exists with the given email
// (normalized before the query).
func (s *Store) EmailTaken(ctx context.Context, email string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Err()
	if err == nil {
		return true, nil
	}
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return false, err
}

// Create inserts a new user with a fresh UUID identifier and the normalized
// email.
//
// Callers are expected to run EmailTaken first. The check and the insert are
// separate operations with no transactional guard: two concurrent
// registrations for the same email can both land. That race window is a
// known property of the platform, not a bug to fix here; anything stronger
// would need a unique index and a different duplicate-at-insert contract.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = uuid.NewString()
	u.Email = normalize.Email(u.Email)
	u.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// FindByEmail looks a user up by normalized email.
//
// The primary path is an indexed query. When that returns nothing, the
// store degrades to a full collection scan comparing normalized emails in
// memory; this catches records whose stored email carries stray whitespace
// or casing from before normalization was enforced at the write path. Only
// after both paths miss does it return mongo.ErrNoDocuments.
func (s *Store) FindByEmail(ctx context.Context, email string) (models.User, error) {
	email = normalize.Email(email)

	var u models.User
	err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == nil {
		return u, nil
	}
	if err != mongo.ErrNoDocuments {
		return models.User{}, err
	}

	return s.scanByEmail(ctx, email)
}

// scanByEmail is the documented degraded path: stream every user and match
// on the normalized email.
func (s *Store) scanByEmail(ctx context.Context, email string) (models.User, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return models.User{}, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var u models.User
		if err := cur.Decode(&u); err != nil {
			return models.User{}, err
		}
		if normalize.Email(u.Email) == email {
			return u, nil
		}
	}
	if err := cur.Err(); err != nil {
		return models.User{}, err
	}
	return models.User{}, mongo.ErrNoDocuments
}

// GetByID loads a user by its UUID string identifier.
func (s *Store) GetByID(ctx context.Context, id string) (models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return models.User{}, err
	}
	return u, nil
}
