package routes

import (
	"github.com/gofiber/fiber/v2"

	"linkline/internal/handlers"
)

type Deps struct {
	Auth     *handlers.AuthHandler
	Users    *handlers.UserHandler
	Posts    *handlers.PostHandler
	Comments *handlers.CommentHandler
}

func Register(app *fiber.App, d Deps) {
	AuthRoutes(app, d.Auth, d.Users)
	PostRoutes(app, d.Posts, d.Comments)
}
