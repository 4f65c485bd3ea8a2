package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth rejects requests that reached this point without a user_id
// in Locals, i.e. anonymous requests that JWTUidOnly let through.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := c.Locals("user_id").(string)
		if !ok || strings.TrimSpace(uid) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		return c.Next()
	}
}
