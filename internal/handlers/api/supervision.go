package api

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"youthhub/internal/db"
	"youthhub/internal/models"
	"youthhub/internal/workflow"
)

// SupervisionHandler handles the supervisor side of the spark workflow.
type SupervisionHandler struct {
	db          *db.DB
	coordinator *workflow.Coordinator
}

// NewSupervisionHandler creates a new API supervision handler.
func NewSupervisionHandler(database *db.DB, coordinator *workflow.Coordinator) *SupervisionHandler {
	return &SupervisionHandler{db: database, coordinator: coordinator}
}

// PendingQueue returns the pending requests addressed to the authenticated
// supervisor.
func (h *SupervisionHandler) PendingQueue(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	requests, err := h.db.GetPendingForSupervisor(c.Context(), user.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch pending requests")
	}

	return jsonSuccess(c, requests)
}

// Respond records the supervisor's accept or reject decision on a request.
func (h *SupervisionHandler) Respond(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request id")
	}

	var body struct {
		Decision string `json:"decision"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	var decision workflow.Decision
	switch body.Decision {
	case "accept":
		decision = workflow.DecisionAccept
	case "reject":
		decision = workflow.DecisionReject
	default:
		return jsonError(c, fiber.StatusBadRequest, `decision must be "accept" or "reject"`)
	}

	req, err := h.coordinator.RespondToRequest(c.Context(), user.ID, id, decision)
	if err != nil {
		return jsonWorkflowError(c, err)
	}

	return jsonSuccess(c, req)
}
