// internal/domain/models/event.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Event is a society event announcement.
//
// Society is the society's display name as free text, not a reference to a
// Society document. Date is stored exactly as received; the format is
// client-defined and never parsed server-side.
type Event struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title   string             `bson:"title" json:"title"`
	Society string             `bson:"society" json:"society"`
	Date    string             `bson:"date" json:"date"`
}
