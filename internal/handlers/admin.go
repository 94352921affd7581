package handlers

import (
	"github.com/gofiber/fiber/v3"

	"youthhub/internal/config"
	"youthhub/internal/db"
	"youthhub/internal/models"
)

// AdminHandler renders the admin dashboard.
type AdminHandler struct {
	db  *db.DB
	cfg *config.Config
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(database *db.DB, cfg *config.Config) *AdminHandler {
	return &AdminHandler{db: database, cfg: cfg}
}

// Dashboard renders an overview of the supervision pipeline: pending
// requests across all supervisors plus idea counts by status.
func (h *AdminHandler) Dashboard(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	pending, err := h.db.GetAllPendingRequests(c.Context())
	if err != nil {
		return err
	}

	counts, err := h.db.CountIdeasByStatus(c.Context())
	if err != nil {
		return err
	}

	users, err := h.db.GetAllUsers(c.Context())
	if err != nil {
		return err
	}

	return c.Render("admin", fiber.Map{
		"Title":       "Admin",
		"SiteTitle":   h.cfg.SiteTitle,
		"User":        user,
		"Pending":     pending,
		"DraftCount":  counts[models.IdeaStatusDraft],
		"ReviewCount": counts[models.IdeaStatusPendingReview],
		"PublicCount": counts[models.IdeaStatusPublic],
		"Users":       users,
	})
}
