package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"linkline/model"
)

// FeedRepository produces the shaped listings: the home feed and the
// profile's own-posts view. Both are single aggregations over posts.
type FeedRepository struct {
	col *mongo.Collection
}

func NewFeedRepository(db *mongo.Database) *FeedRepository {
	return &FeedRepository{col: db.Collection("posts")}
}

// ListFeed returns every post, newest first, joined with its author and
// annotated for the viewer. Full scan, no pagination; fine at this scale,
// a known limitation beyond it.
func (r *FeedRepository) ListFeed(ctx context.Context, viewer bson.ObjectID) ([]model.FeedPost, error) {
	likes := bson.M{"$ifNull": bson.A{"$likes", bson.A{}}}

	pipe := mongo.Pipeline{
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "created_at", Value: -1},
			{Key: "_id", Value: -1},
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "author",
		}}},
		bson.D{{Key: "$unwind", Value: "$author"}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "comments",
			"localField":   "_id",
			"foreignField": "post_id",
			"as":           "comments",
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":            1,
			"content":        1,
			"image_url":      1,
			"created_at":     1,
			"likes_count":    bson.M{"$size": likes},
			"liked":          bson.M{"$in": bson.A{viewer, likes}},
			"comments_count": bson.M{"$size": "$comments"},
			"author": bson.M{
				"_id":        "$author._id",
				"name":       "$author.name",
				"avatar_url": "$author.avatar_url",
			},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []model.FeedPost{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListByAuthor returns the actor's own posts, newest first, with the
// author joined in. Deliberately not annotated with like/comment counts;
// the profile view keeps the raw document shape.
func (r *FeedRepository) ListByAuthor(ctx context.Context, author bson.ObjectID) ([]model.OwnPost, error) {
	pipe := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"user_id": author}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "created_at", Value: -1},
			{Key: "_id", Value: -1},
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "author",
		}}},
		bson.D{{Key: "$unwind", Value: "$author"}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":        1,
			"content":    1,
			"image_url":  1,
			"likes":      bson.M{"$ifNull": bson.A{"$likes", bson.A{}}},
			"created_at": 1,
			"updated_at": 1,
			"author": bson.M{
				"_id":   "$author._id",
				"name":  "$author.name",
				"email": "$author.email",
			},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []model.OwnPost{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
