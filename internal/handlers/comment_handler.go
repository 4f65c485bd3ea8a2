package handlers

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"linkline/dto"
	"linkline/internal/authctx"
	"linkline/model"
)

type CommentRepo interface {
	Create(ctx context.Context, postID, userID bson.ObjectID, text string) (*model.CommentView, error)
	ListByPost(ctx context.Context, postID bson.ObjectID) ([]model.CommentView, error)
}

// PostFinder is the slice of the post store the comment listing needs for
// its explicit post-existence check.
type PostFinder interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*model.Post, error)
}

type CommentHandler struct {
	Comments CommentRepo
	Posts    PostFinder
}

func NewCommentHandler(comments CommentRepo, posts PostFinder) *CommentHandler {
	return &CommentHandler{Comments: comments, Posts: posts}
}

// List godoc
// @Summary      List a post's comments, newest first
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Post ID"
// @Success      200  {array}  model.CommentView
// @Failure      404  {object} dto.ErrorResponse
// @Router       /posts/{id}/comments [get]
func (h *CommentHandler) List(c *fiber.Ctx) error {
	postID, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid post id"})
	}

	// A post with zero comments and a missing post both produce an empty
	// list downstream; only this explicit check distinguishes them.
	if _, err := h.Posts.FindByID(c.Context(), postID); err != nil {
		return postErr(c, err)
	}

	items, err := h.Comments.ListByPost(c.Context(), postID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "server error"})
	}
	return c.JSON(items)
}

// Create godoc
// @Summary      Add a comment to a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path     string                    true  "Post ID"
// @Param        body  body     dto.CreateCommentRequest  true  "Comment text"
// @Success      201  {object} model.CommentView
// @Failure      400  {object} dto.ErrorResponse
// @Router       /posts/{id}/comments [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	postID, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid post id"})
	}

	var body dto.CreateCommentRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	text := strings.TrimSpace(body.Text)
	if text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "text required"})
	}

	// The referenced post is not checked for existence here; only the
	// listing endpoint makes that distinction.
	com, err := h.Comments.Create(c.Context(), postID, uid, text)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "server error"})
	}
	return c.Status(fiber.StatusCreated).JSON(com)
}
