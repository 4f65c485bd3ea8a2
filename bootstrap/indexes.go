package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the indexes the app relies on. The unique email
// index is what turns a duplicate registration into a write error (11000).
func EnsureIndexes(db *mongo.Database) error {
	ctx := context.Background()

	_, err := db.Collection("users").Indexes().CreateOne(ctx,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
	)
	if err != nil {
		return err
	}

	_, err = db.Collection("posts").Indexes().CreateOne(ctx,
		mongo.IndexModel{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("author_recency"),
		},
	)
	if err != nil {
		return err
	}

	_, err = db.Collection("comments").Indexes().CreateOne(ctx,
		mongo.IndexModel{
			Keys: bson.D{
				{Key: "post_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("post_recency"),
		},
	)
	return err
}
