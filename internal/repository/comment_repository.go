package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"linkline/model"
)

type CommentRepository struct {
	colComments *mongo.Collection
	colUsers    *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{
		colComments: db.Collection("comments"),
		colUsers:    db.Collection("users"),
	}
}

// Create inserts a comment against the given post id. The post is not
// checked for existence here; a comment can reference an id that was
// deleted in between. Matches the upstream behavior.
func (r *CommentRepository) Create(ctx context.Context, postID, userID bson.ObjectID, text string) (*model.CommentView, error) {
	doc := &model.Comment{
		ID:        bson.NewObjectID(),
		PostID:    postID,
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := r.colComments.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	var author model.User
	if err := r.colUsers.FindOne(ctx, bson.M{"_id": userID}).Decode(&author); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &model.CommentView{
		ID:        doc.ID,
		PostID:    doc.PostID,
		Text:      doc.Text,
		CreatedAt: doc.CreatedAt,
		User: model.AuthorSummary{
			ID:        author.ID,
			Name:      author.Name,
			AvatarURL: author.AvatarURL,
		},
	}, nil
}

// ListByPost returns a post's comments, newest first, each with its author
// summary joined in.
func (r *CommentRepository) ListByPost(ctx context.Context, postID bson.ObjectID) ([]model.CommentView, error) {
	pipe := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"post_id": postID}}},
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
			"post_id":    1,
			"text":       1,
			"created_at": 1,
			"author": bson.M{
				"_id":        "$author._id",
				"name":       "$author.name",
				"avatar_url": "$author.avatar_url",
			},
		}}},
	}

	cur, err := r.colComments.Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []model.CommentView{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CommentRepository) CountByPost(ctx context.Context, postID bson.ObjectID) (int64, error) {
	return r.colComments.CountDocuments(ctx, bson.M{"post_id": postID})
}

// DeleteByPost removes every comment referencing the post. Cascade path
// of a post delete; there is no direct comment delete endpoint.
func (r *CommentRepository) DeleteByPost(ctx context.Context, postID bson.ObjectID) error {
	_, err := r.colComments.DeleteMany(ctx, bson.M{"post_id": postID})
	return err
}
