package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"linkline/model"
)

var ErrNotFound = errors.New("not found")

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection("posts")}
}

func (r *PostRepository) Insert(ctx context.Context, userID bson.ObjectID, content string, imageURL *string) (*model.Post, error) {
	now := time.Now().UTC()
	p := &model.Post{
		ID:        bson.NewObjectID(),
		UserID:    userID,
		Content:   content,
		ImageURL:  imageURL,
		Likes:     []bson.ObjectID{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Post, error) {
	var p model.Post
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// UpdateContent changes the text of a post. The image is immutable after
// creation, so content is the only field the update touches.
func (r *PostRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*model.Post, error) {
	now := time.Now().UTC()
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"content": content, "updated_at": now}},
	)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *PostRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleLike flips the actor's membership in the post's liker set and
// reports the resulting count and membership. $addToSet keeps membership
// unique, so toggling N times always lands on liked == (N odd).
func (r *PostRepository) ToggleLike(ctx context.Context, id, userID bson.ObjectID) (likesCount int, liked bool, err error) {
	p, err := r.FindByID(ctx, id)
	if err != nil {
		return 0, false, err
	}

	op := "$addToSet"
	if p.Liked(userID) {
		op = "$pull"
	}
	if _, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{op: bson.M{"likes": userID}},
	); err != nil {
		return 0, false, err
	}

	p, err = r.FindByID(ctx, id)
	if err != nil {
		return 0, false, err
	}
	return len(p.Likes), p.Liked(userID), nil
}
