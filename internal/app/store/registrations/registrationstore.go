// internal/app/store/registrations/registrationstore.go
package registrationstore

import (
	"context"
	"time"

	"github.com/campushub/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("society_registrations")}
}

// Create inserts a society registration with a server-assigned timestamp.
// The collection is write-only from this service; nothing reads it back.
func (s *Store) Create(ctx context.Context, reg models.SocietyRegistration) (models.SocietyRegistration, error) {
	reg.ID = primitive.NewObjectID()
	reg.Timestamp = time.Now().UTC()
	if reg.FormData == nil {
		reg.FormData = map[string]any{}
	}
	if _, err := s.c.InsertOne(ctx, reg); err != nil {
		return models.SocietyRegistration{}, err
	}
	return reg, nil
}
