package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"linkline/dto"
	"linkline/model"
)

func newCommentApp(t *testing.T, f *postFixture, actingAs bson.ObjectID) *fiber.App {
	t.Helper()
	h := NewCommentHandler(f.comments, f.posts)
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", actingAs.Hex())
		return c.Next()
	})
	app.Get("/posts/:id/comments", h.List)
	app.Post("/posts/:id/comments", h.Create)
	return app
}

func TestAddComment(t *testing.T) {
	f := newPostFixture()
	p, err := f.posts.Insert(context.Background(), f.owner.ID, "post", nil)
	require.NoError(t, err)
	app := newCommentApp(t, f, f.other.ID)

	send := func(text string) *http.Response {
		b, _ := json.Marshal(dto.CreateCommentRequest{Text: text})
		req := httptest.NewRequest(http.MethodPost, "/posts/"+p.ID.Hex()+"/comments", bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	resp := send("")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = send("   ")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = send("first!")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var cv model.CommentView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cv))
	assert.Equal(t, "first!", cv.Text)
	assert.Equal(t, p.ID, cv.PostID)
	assert.Equal(t, "Other", cv.User.Name)
}

func TestListComments(t *testing.T) {
	f := newPostFixture()
	p, err := f.posts.Insert(context.Background(), f.owner.ID, "post", nil)
	require.NoError(t, err)
	_, err = f.comments.Create(context.Background(), p.ID, f.other.ID, "hey")
	require.NoError(t, err)
	app := newCommentApp(t, f, f.other.ID)

	// Existing post lists its comments.
	req := httptest.NewRequest(http.MethodGet, "/posts/"+p.ID.Hex()+"/comments", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var items []model.CommentView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, "hey", items[0].Text)

	// Unknown post id is an explicit 404, not an empty list.
	req = httptest.NewRequest(http.MethodGet, "/posts/"+bson.NewObjectID().Hex()+"/comments", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
