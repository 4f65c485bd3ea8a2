package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Comment is immutable once created; there is no update path and removal
// only happens as part of a post's cascade delete.
type Comment struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	PostID    bson.ObjectID `json:"postId"    bson:"post_id"`
	UserID    bson.ObjectID `json:"userId"    bson:"user_id"`
	Text      string        `json:"text"      bson:"text"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}
