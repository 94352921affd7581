package api

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"youthhub/internal/db"
	"youthhub/internal/models"
	"youthhub/internal/workflow"
)

// SparkHandler handles spark (startup idea) operations via JSON API.
type SparkHandler struct {
	db          *db.DB
	coordinator *workflow.Coordinator
}

// NewSparkHandler creates a new API spark handler.
func NewSparkHandler(database *db.DB, coordinator *workflow.Coordinator) *SparkHandler {
	return &SparkHandler{db: database, coordinator: coordinator}
}

// ListPublic returns all public sparks, optionally filtered by category.
func (h *SparkHandler) ListPublic(c fiber.Ctx) error {
	category := c.Query("category", "")
	ideas, err := h.db.GetPublicIdeas(c.Context(), category, 100)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch sparks")
	}

	return jsonSuccess(c, ideas)
}

// GetMine returns the authenticated user's spark.
func (h *SparkHandler) GetMine(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	idea, err := h.db.Ideas().GetByOwner(c.Context(), user.ID)
	if err != nil {
		if errors.Is(err, workflow.ErrIdeaNotFound) {
			return jsonError(c, fiber.StatusNotFound, "you have no spark yet")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch spark")
	}

	return jsonSuccess(c, idea)
}

// Create creates the authenticated user's spark.
func (h *SparkHandler) Create(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var body struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	idea, err := h.coordinator.CreateIdea(c.Context(), user.ID, workflow.IdeaDraft{
		Title:       body.Title,
		Description: body.Description,
		Category:    body.Category,
	})
	if err != nil {
		return jsonWorkflowError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "ok",
		"data":   idea,
	})
}

// Update edits the authenticated user's spark. Public sparks are frozen.
func (h *SparkHandler) Update(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var body struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	idea, err := h.coordinator.UpdateIdea(c.Context(), user.ID, workflow.IdeaDraft{
		Title:       body.Title,
		Description: body.Description,
		Category:    body.Category,
	})
	if err != nil {
		return jsonWorkflowError(c, err)
	}

	return jsonSuccess(c, idea)
}

// Delete removes the authenticated user's spark, withdrawing any pending
// supervision request along the way.
func (h *SparkHandler) Delete(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid spark id")
	}

	if err := h.coordinator.DeleteIdea(c.Context(), user.ID, id); err != nil {
		return jsonWorkflowError(c, err)
	}

	return jsonSuccess(c, fiber.Map{
		"message": "spark deleted successfully",
	})
}

// RequestSupervision asks a supervisor to review the user's spark.
func (h *SparkHandler) RequestSupervision(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var body struct {
		SupervisorID string `json:"supervisor_id"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	supervisorID, err := uuid.Parse(body.SupervisorID)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid supervisor id")
	}

	req, err := h.coordinator.RequestSupervision(c.Context(), user.ID, supervisorID)
	if err != nil {
		return jsonWorkflowError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "ok",
		"data":   req,
	})
}

// CancelRequest withdraws the user's pending supervision request.
func (h *SparkHandler) CancelRequest(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request id")
	}

	if err := h.coordinator.CancelRequest(c.Context(), user.ID, id); err != nil {
		return jsonWorkflowError(c, err)
	}

	return jsonSuccess(c, fiber.Map{
		"message": "supervision request withdrawn",
	})
}

// ListSupervisors returns users who can be asked to supervise a spark.
func (h *SparkHandler) ListSupervisors(c fiber.Ctx) error {
	supervisors, err := h.db.GetSupervisors(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch supervisors")
	}

	return jsonSuccess(c, supervisors)
}
