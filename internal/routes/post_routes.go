package routes

import (
	"github.com/gofiber/fiber/v2"

	"linkline/internal/handlers"
	"linkline/internal/middleware"
)

func PostRoutes(app *fiber.App, posts *handlers.PostHandler, comments *handlers.CommentHandler) {
	grp := app.Group("/posts", middleware.RequireAuth())

	grp.Get("/", posts.List)
	grp.Get("/user", posts.ListOwn)
	grp.Post("/", posts.Create)
	grp.Put("/:id", posts.Update)
	grp.Delete("/:id", posts.Delete)
	grp.Post("/:id/like", posts.Like)

	grp.Get("/:id/comments", comments.List)
	grp.Post("/:id/comments", comments.Create)
}
