package api

import (
	"github.com/gofiber/fiber/v3"

	"youthhub/internal/workflow"
)

// jsonSuccess returns a 200 response with data wrapped in the standard envelope.
func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"data":   data,
	})
}

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}

// jsonWorkflowError maps a workflow error to its HTTP status and returns the
// standard error envelope. Unrecognized errors become a 500.
func jsonWorkflowError(c fiber.Ctx, err error) error {
	kind, ok := workflow.KindOf(err)
	if !ok {
		return jsonError(c, fiber.StatusInternalServerError, "internal error")
	}
	return jsonError(c, statusForKind(kind), err.Error())
}

// statusForKind maps a workflow error kind to an HTTP status code.
func statusForKind(kind workflow.Kind) int {
	switch kind {
	case workflow.KindValidation:
		return fiber.StatusBadRequest
	case workflow.KindAlreadyExists, workflow.KindDuplicatePending:
		return fiber.StatusConflict
	case workflow.KindInvalidState:
		return fiber.StatusConflict
	case workflow.KindForbidden:
		return fiber.StatusForbidden
	case workflow.KindNotFound:
		return fiber.StatusNotFound
	case workflow.KindConsistency:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}
