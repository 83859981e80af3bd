package registrationstore_test

import (
	"testing"

	registrationstore "github.com/campushub/campushub/internal/app/store/registrations"
	"github.com/campushub/campushub/internal/domain/models"
	"github.com/campushub/campushub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := registrationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.SocietyRegistration{
		UserID:    "u1",
		SocietyID: "s1",
		FormData:  map[string]any{"why": "love chess"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID.IsZero() {
		t.Error("expected an identifier")
	}
	if created.Timestamp.IsZero() {
		t.Error("expected a server-assigned timestamp")
	}

	var stored models.SocietyRegistration
	if err := db.Collection("society_registrations").FindOne(ctx, bson.M{"_id": created.ID}).Decode(&stored); err != nil {
		t.Fatalf("failed to load stored registration: %v", err)
	}
	if stored.FormData["why"] != "love chess" {
		t.Errorf("form_data not preserved: %+v", stored.FormData)
	}
}

func TestStore_Create_DefaultsFormData(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := registrationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.SocietyRegistration{UserID: "u1", SocietyID: "s1"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.FormData == nil {
		t.Error("expected form_data to default to an empty map")
	}
}
