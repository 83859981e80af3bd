// internal/domain/models/society.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Society is a campus society/club. Societies are append-only: there are no
// update or delete operations, and names are not unique.
type Society struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
}
