package api

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"youthhub/internal/db"
	"youthhub/internal/models"
)

// EventHandler handles center event operations via JSON API.
type EventHandler struct {
	db *db.DB
}

// NewEventHandler creates a new API event handler.
func NewEventHandler(database *db.DB) *EventHandler {
	return &EventHandler{db: database}
}

// List returns upcoming events.
func (h *EventHandler) List(c fiber.Ctx) error {
	events, err := h.db.GetUpcomingEvents(c.Context(), 100)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch events")
	}

	return jsonSuccess(c, events)
}

// Get returns a single event by ID.
func (h *EventHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid event id")
	}

	event, err := h.db.GetEventByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrEventNotFound) {
			return jsonError(c, fiber.StatusNotFound, "event not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch event")
	}

	return jsonSuccess(c, event)
}

// Create creates a new event (admin only, enforced by routing).
func (h *EventHandler) Create(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var body struct {
		Title       string    `json:"title"`
		Description string    `json:"description"`
		Location    string    `json:"location"`
		StartsAt    time.Time `json:"starts_at"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(body.Title) == "" {
		return jsonError(c, fiber.StatusBadRequest, "title is required")
	}
	if body.StartsAt.IsZero() {
		return jsonError(c, fiber.StatusBadRequest, "starts_at is required")
	}

	event := &models.Event{
		Title:       body.Title,
		Description: body.Description,
		Location:    body.Location,
		StartsAt:    body.StartsAt,
		CreatedBy:   &user.ID,
	}
	if err := h.db.CreateEvent(c.Context(), event); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to create event")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "ok",
		"data":   event,
	})
}

// Delete removes an event (admin only, enforced by routing).
func (h *EventHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid event id")
	}

	if err := h.db.DeleteEvent(c.Context(), id); err != nil {
		if errors.Is(err, db.ErrEventNotFound) {
			return jsonError(c, fiber.StatusNotFound, "event not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete event")
	}

	return jsonSuccess(c, fiber.Map{
		"message": "event deleted successfully",
	})
}
