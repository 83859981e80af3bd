// internal/app/store/follows/followstore.go
package followstore

import (
	"context"

	"github.com/campushub/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("follows")}
}

// Create inserts a follow unconditionally: no existence check on the user
// or the society, and duplicate pairs are allowed.
func (s *Store) Create(ctx context.Context, f models.Follow) (models.Follow, error) {
	f.ID = primitive.NewObjectID()
	if _, err := s.c.InsertOne(ctx, f); err != nil {
		return models.Follow{}, err
	}
	return f, nil
}

// List returns every follow, unordered and unbounded.
func (s *Store) List(ctx context.Context) ([]models.Follow, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	follows := []models.Follow{}
	if err := cur.All(ctx, &follows); err != nil {
		return nil, err
	}
	return follows, nil
}
