package api

import (
	"github.com/gofiber/fiber/v3"

	"youthhub/internal/models"
)

// ProfileHandler exposes the authenticated user's own record.
type ProfileHandler struct{}

// NewProfileHandler creates a new API profile handler.
func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

// Me returns the authenticated user's profile.
func (h *ProfileHandler) Me(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	return jsonSuccess(c, user)
}
