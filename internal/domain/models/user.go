// internal/domain/models/user.go
package models

import "time"

// User is a registered platform account.
//
// The _id is a client-generated UUID string rather than an ObjectID: user
// identifiers travel to the frontend and back as opaque strings, and the
// registration path assigns them before the insert.
//
// Password holds whatever the configured credential scheme produced: the
// verbatim password under the plaintext scheme, a bcrypt hash otherwise.
// It is never serialized into responses.
type User struct {
	ID       string `bson:"_id,omitempty" json:"id"`
	Email    string `bson:"email" json:"email"` // trimmed + lowercased
	Password string `bson:"password" json:"-"`
	Role     string `bson:"role" json:"role"` // open set: student | admin | president | ...

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
