// internal/app/store/societies/societystore.go
package societystore

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
	return &Store{c: db.Collection("societies")}
}

// Create inserts a new society. Names are not unique; every call inserts.
func (s *Store) Create(ctx context.Context, soc models.Society) (models.Society, error) {
	soc.ID = primitive.NewObjectID()
	if _, err := s.c.InsertOne(ctx, soc); err != nil {
		return models.Society{}, err
	}
	return soc, nil
}

// List returns every society, unordered and unbounded.
func (s *Store) List(ctx context.Context) ([]models.Society, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	societies := []models.Society{}
	if err := cur.All(ctx, &societies); err != nil {
		return nil, err
	}
	return societies, nil
}
