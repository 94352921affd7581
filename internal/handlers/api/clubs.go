package api

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"youthhub/internal/config"
	"youthhub/internal/db"
	"youthhub/internal/models"
)

// ClubHandler handles club operations via JSON API.
type ClubHandler struct {
	db   *db.DB
	site *config.SiteConfig
}

// NewClubHandler creates a new API club handler.
func NewClubHandler(database *db.DB, site *config.SiteConfig) *ClubHandler {
	return &ClubHandler{db: database, site: site}
}

// List returns clubs, optionally filtered by category.
func (h *ClubHandler) List(c fiber.Ctx) error {
	category := c.Query("category", "")
	clubs, err := h.db.GetClubs(c.Context(), category)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch clubs")
	}

	return jsonSuccess(c, clubs)
}

// Get returns a single club by ID.
func (h *ClubHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid club id")
	}

	club, err := h.db.GetClubByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrClubNotFound) {
			return jsonError(c, fiber.StatusNotFound, "club not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch club")
	}

	return jsonSuccess(c, club)
}

// Create creates a new club (admin only, enforced by routing).
func (h *ClubHandler) Create(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Category    string `json:"category"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(body.Name) == "" {
		return jsonError(c, fiber.StatusBadRequest, "name is required")
	}
	if h.site != nil && body.Category != "" && !h.site.HasCategory(body.Category) {
		return jsonError(c, fiber.StatusBadRequest, "unknown category")
	}

	club := &models.Club{
		Name:        body.Name,
		Description: body.Description,
		Category:    body.Category,
		CreatedBy:   &user.ID,
	}
	if err := h.db.CreateClub(c.Context(), club); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to create club")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "ok",
		"data":   club,
	})
}

// Delete removes a club (admin only, enforced by routing).
func (h *ClubHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid club id")
	}

	if err := h.db.DeleteClub(c.Context(), id); err != nil {
		if errors.Is(err, db.ErrClubNotFound) {
			return jsonError(c, fiber.StatusNotFound, "club not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete club")
	}

	return jsonSuccess(c, fiber.Map{
		"message": "club deleted successfully",
	})
}
