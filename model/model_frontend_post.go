package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// View types returned to the client. Raw documents never leave the API:
// the liker set collapses to likesCount + liked-for-the-viewer, the comment
// list collapses to commentsCount, and the author is always a nested summary.

type AuthorSummary struct {
	ID        bson.ObjectID `json:"_id"                 bson:"_id"`
	Name      string        `json:"name"                bson:"name"`
	AvatarURL string        `json:"avatarUrl,omitempty" bson:"avatar_url,omitempty"`
}

type FeedPost struct {
	ID            bson.ObjectID `json:"_id"           bson:"_id"`
	Content       string        `json:"content"       bson:"content"`
	ImageURL      *string       `json:"imageUrl"      bson:"image_url"`
	CreatedAt     time.Time     `json:"createdAt"     bson:"created_at"`
	User          AuthorSummary `json:"user"          bson:"author"`
	LikesCount    int           `json:"likesCount"    bson:"likes_count"`
	CommentsCount int           `json:"commentsCount" bson:"comments_count"`
	Liked         bool          `json:"liked"         bson:"liked"`
}

// OwnAuthor is the author shape of the profile listing, which exposes the
// email instead of the avatar.
type OwnAuthor struct {
	ID    bson.ObjectID `json:"_id"   bson:"_id"`
	Name  string        `json:"name"  bson:"name"`
	Email string        `json:"email" bson:"email"`
}

// OwnPost is the profile listing shape. Unlike FeedPost it carries the raw
// liker set and no derived counts; the two listings are intentionally
// asymmetric.
type OwnPost struct {
	ID        bson.ObjectID   `json:"_id"       bson:"_id"`
	Content   string          `json:"content"   bson:"content"`
	ImageURL  *string         `json:"imageUrl"  bson:"image_url"`
	Likes     []bson.ObjectID `json:"likes"     bson:"likes"`
	CreatedAt time.Time       `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time       `json:"updatedAt" bson:"updated_at"`
	User      OwnAuthor       `json:"user"      bson:"author"`
}

type CommentView struct {
	ID        bson.ObjectID `json:"_id"       bson:"_id"`
	PostID    bson.ObjectID `json:"postId"    bson:"post_id"`
	Text      string        `json:"text"      bson:"text"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
	User      AuthorSummary `json:"user"      bson:"author"`
}
