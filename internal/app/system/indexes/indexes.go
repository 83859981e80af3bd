// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
Errors are aggregated so every problem is visible and startup can fail fast.

The users.email index is deliberately NOT unique: registration enforces
uniqueness with a check-then-insert, and concurrent identical registrations
can still produce duplicates. A unique index would silently change that
contract, so the lookup index stays non-unique on purpose.
*/
func EnsureAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	var problems []string

	if err := ensureUsers(ctx, db, logger); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureFollows(ctx, db, logger); err != nil {
		problems = append(problems, "follows: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureUsers(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	return ensureIndex(ctx, db.Collection("users"), logger, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("email_lookup"),
	})
}

func ensureFollows(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	return ensureIndex(ctx, db.Collection("follows"), logger, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetName("user_lookup"),
	})
}

func ensureIndex(ctx context.Context, coll *mongo.Collection, logger *zap.Logger, model mongo.IndexModel) error {
	name := ""
	if model.Options != nil && model.Options.Name != nil {
		name = *model.Options.Name
	}

	if _, err := coll.Indexes().CreateOne(ctx, model); err != nil {
		// Mongo/DocDB report IndexOptionsConflict when the same keys exist
		// under a different name; treat that as already-ensured.
		if strings.Contains(err.Error(), "IndexOptionsConflict") {
			logger.Warn("index exists under a different name",
				zap.String("collection", coll.Name()),
				zap.String("name", name))
			return nil
		}
		return err
	}

	logger.Info("ensured index",
		zap.String("collection", coll.Name()),
		zap.String("name", name))
	return nil
}
