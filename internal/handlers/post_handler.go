package handlers

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"linkline/dto"
	"linkline/internal/authctx"
	"linkline/internal/repository"
	"linkline/model"
)

type PostRepo interface {
	Insert(ctx context.Context, userID bson.ObjectID, content string, imageURL *string) (*model.Post, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*model.Post, error)
	UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*model.Post, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	ToggleLike(ctx context.Context, id, userID bson.ObjectID) (likesCount int, liked bool, err error)
}

type FeedRepo interface {
	ListFeed(ctx context.Context, viewer bson.ObjectID) ([]model.FeedPost, error)
	ListByAuthor(ctx context.Context, author bson.ObjectID) ([]model.OwnPost, error)
}

type CommentStore interface {
	CountByPost(ctx context.Context, postID bson.ObjectID) (int64, error)
	DeleteByPost(ctx context.Context, postID bson.ObjectID) error
}

// BlobStore is the disk-backed image store behind /uploads.
type BlobStore interface {
	Save(fh *multipart.FileHeader) (urlPath string, err error)
	Remove(urlPath string) error
}

type PostHandler struct {
	Posts    PostRepo
	Feed     FeedRepo
	Comments CommentStore
	Users    UserRepo
	Store    BlobStore
}

func NewPostHandler(posts PostRepo, feed FeedRepo, comments CommentStore, users UserRepo, store BlobStore) *PostHandler {
	return &PostHandler{Posts: posts, Feed: feed, Comments: comments, Users: users, Store: store}
}

// shape builds the client view of a single post for the given viewer.
func shape(p *model.Post, author *model.User, viewer bson.ObjectID, commentsCount int) model.FeedPost {
	return model.FeedPost{
		ID:        p.ID,
		Content:   p.Content,
		ImageURL:  p.ImageURL,
		CreatedAt: p.CreatedAt,
		User: model.AuthorSummary{
			ID:        author.ID,
			Name:      author.Name,
			AvatarURL: author.AvatarURL,
		},
		LikesCount:    len(p.Likes),
		CommentsCount: commentsCount,
		Liked:         p.Liked(viewer),
	}
}

// List godoc
// @Summary      Feed of all posts, newest first
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  model.FeedPost
// @Failure      401  {object} dto.ErrorResponse
// @Router       /posts [get]
func (h *PostHandler) List(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	items, err := h.Feed.ListFeed(c.Context(), uid)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "server error"})
	}
	return c.JSON(items)
}

// ListOwn godoc
// @Summary      The actor's own posts, newest first
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  model.OwnPost
// @Failure      401  {object} dto.ErrorResponse
// @Router       /posts/user [get]
func (h *PostHandler) ListOwn(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	items, err := h.Feed.ListByAuthor(c.Context(), uid)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "server error"})
	}
	return c.JSON(items)
}

// Create godoc
// @Summary      Create a post (multipart: content, optional image)
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        content  formData  string  false  "Post text"
// @Param        image    formData  file    false  "Image file"
// @Success      201  {object} model.FeedPost
// @Failure      400  {object} dto.ErrorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	content := strings.TrimSpace(c.FormValue("content"))
	fh, _ := c.FormFile("image")
	if content == "" && fh == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "post content or image required"})
	}

	var imageURL *string
	if fh != nil {
		url, err := h.Store.Save(fh)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "server error"})
		}
		imageURL = &url
	}

	p, err := h.Posts.Insert(c.Context(), uid, content, imageURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "server error"})
	}

	author, err := h.Users.FindByID(c.Context(), uid)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(shape(p, author, uid, 0))
}

// Update godoc
// @Summary      Update a post's content (owner only)
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path     string                 true  "Post ID"
// @Param        body  body     dto.UpdatePostRequest  true  "New content"
// @Success      200  {object} model.FeedPost
// @Failure      403  {object} dto.ErrorResponse
// @Failure      404  {object} dto.ErrorResponse
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid post id"})
	}

	p, err := h.Posts.FindByID(c.Context(), id)
	if err != nil {
		return postErr(c, err)
	}
	if p.UserID != uid {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "forbidden"})
	}

	var body dto.UpdatePostRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}

	content := p.Content
	if body.Content != nil {
		content = *body.Content
	}
	p, err = h.Posts.UpdateContent(c.Context(), id, content)
	if err != nil {
		return postErr(c, err)
	}

	author, err := h.Users.FindByID(c.Context(), uid)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "server error"})
	}
	n, err := h.Comments.CountByPost(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "server error"})
	}

	return c.JSON(shape(p, author, uid, int(n)))
}

// Delete godoc
// @Summary      Delete a post and cascade its comments and image (owner only)
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Post ID"
// @Success      200  {object} dto.DeleteResponse
// @Failure      403  {object} dto.ErrorResponse
// @Failure      404  {object} dto.ErrorResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid post id"})
	}

	p, err := h.Posts.FindByID(c.Context(), id)
	if err != nil {
		return postErr(c, err)
	}
	if p.UserID != uid {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "forbidden"})
	}

	// Best-effort image cleanup: a failure here is reported as a warning,
	// never as a request failure. Comment and post deletion still proceed.
	var warnings []string
	if p.ImageURL != nil {
		if err := h.Store.Remove(*p.ImageURL); err != nil {
			log.Printf("post %s: image cleanup failed: %v", id.Hex(), err)
			warnings = append(warnings, "image cleanup failed")
		}
	}

	if err := h.Comments.DeleteByPost(c.Context(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "server error"})
	}
	if err := h.Posts.Delete(c.Context(), id); err != nil {
		return postErr(c, err)
	}

	return c.JSON(dto.DeleteResponse{OK: true, Warnings: warnings})
}

// Like godoc
// @Summary      Toggle the actor's like on a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Post ID"
// @Success      200  {object} dto.LikeResponse
// @Failure      404  {object} dto.ErrorResponse
// @Router       /posts/{id}/like [post]
func (h *PostHandler) Like(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid post id"})
	}

	count, liked, err := h.Posts.ToggleLike(c.Context(), id, uid)
	if err != nil {
		return postErr(c, err)
	}
	return c.JSON(dto.LikeResponse{LikesCount: count, Liked: liked})
}

func postErr(c *fiber.Ctx, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "not found"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "server error"})
}
