// internal/domain/models/follow.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Follow associates a user with a society by name. Neither side is checked
// against the users or societies collections, and the same pair may be
// inserted any number of times.
type Follow struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID  string             `bson:"user_id" json:"user_id"`
	Society string             `bson:"society" json:"society"`
}
