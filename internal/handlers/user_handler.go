package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"linkline/dto"
	"linkline/internal/authctx"
	"linkline/internal/repository"
)

type UserHandler struct {
	Users UserRepo
}

func NewUserHandler(users UserRepo) *UserHandler {
	return &UserHandler{Users: users}
}

// Me godoc
// @Summary      Current user summary
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} dto.MeResponse
// @Failure      401  {object} dto.ErrorResponse
// @Failure      404  {object} dto.ErrorResponse
// @Router       /users/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	u, err := h.Users.FindByID(c.Context(), uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "user not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "server error"})
	}

	return c.JSON(dto.MeResponse{
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		AvatarURL: u.AvatarURL,
	})
}
