package routes

import (
	"github.com/gofiber/fiber/v2"

	"linkline/internal/handlers"
	"linkline/internal/middleware"
)

func AuthRoutes(app *fiber.App, auth *handlers.AuthHandler, users *handlers.UserHandler) {
	grp := app.Group("/auth")
	grp.Post("/register", auth.Register)
	grp.Post("/login", auth.Login)

	me := app.Group("/users", middleware.RequireAuth())
	me.Get("/me", users.Me)
}
