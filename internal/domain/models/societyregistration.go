// internal/domain/models/societyregistration.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SocietyRegistration is a submitted society sign-up form. FormData is an
// open-ended answers map defined by each society's form. The collection is
// write-only from this service; no endpoint reads it back.
type SocietyRegistration struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	SocietyID string             `bson:"society_id" json:"society_id"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"` // server-assigned, UTC
	FormData  map[string]any     `bson:"form_data" json:"form_data"`
}
