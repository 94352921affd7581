package api

import (
	"testing"

	"github.com/gofiber/fiber/v3"

	"youthhub/internal/workflow"
)

func TestStatusForKind(t *testing.T) {
	tests := []struct {
		name     string
		kind     workflow.Kind
		expected int
	}{
		{
			name:     "validation maps to bad request",
			kind:     workflow.KindValidation,
			expected: fiber.StatusBadRequest,
		},
		{
			name:     "already exists maps to conflict",
			kind:     workflow.KindAlreadyExists,
			expected: fiber.StatusConflict,
		},
		{
			name:     "duplicate pending maps to conflict",
			kind:     workflow.KindDuplicatePending,
			expected: fiber.StatusConflict,
		},
		{
			name:     "invalid state maps to conflict",
			kind:     workflow.KindInvalidState,
			expected: fiber.StatusConflict,
		},
		{
			name:     "forbidden maps to forbidden",
			kind:     workflow.KindForbidden,
			expected: fiber.StatusForbidden,
		},
		{
			name:     "not found maps to not found",
			kind:     workflow.KindNotFound,
			expected: fiber.StatusNotFound,
		},
		{
			name:     "consistency maps to internal error",
			kind:     workflow.KindConsistency,
			expected: fiber.StatusInternalServerError,
		},
		{
			name:     "unknown kind maps to internal error",
			kind:     workflow.Kind("mystery"),
			expected: fiber.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statusForKind(tt.kind)
			if got != tt.expected {
				t.Errorf("statusForKind(%q) = %d, want %d", tt.kind, got, tt.expected)
			}
		})
	}
}
