package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Post keeps the liker set embedded in the document. A user id appears at
// most once in Likes ($addToSet), so len(Likes) is the like count.
type Post struct {
	ID        bson.ObjectID   `json:"id"        bson:"_id,omitempty"`
	UserID    bson.ObjectID   `json:"userId"    bson:"user_id"`
	Content   string          `json:"content"   bson:"content"`
	ImageURL  *string         `json:"imageUrl"  bson:"image_url"`
	Likes     []bson.ObjectID `json:"likes"     bson:"likes"`
	CreatedAt time.Time       `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time       `json:"updatedAt" bson:"updated_at"`
}

// Liked reports whether uid is in the liker set.
func (p *Post) Liked(uid bson.ObjectID) bool {
	for _, id := range p.Likes {
		if id == uid {
			return true
		}
	}
	return false
}
