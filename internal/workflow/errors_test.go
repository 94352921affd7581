package workflow

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	err := newError(KindForbidden, "nope")

	kind, ok := KindOf(err)
	if !ok || kind != KindForbidden {
		t.Errorf("KindOf = (%q, %v), want (forbidden, true)", kind, ok)
	}

	// Wrapped workflow errors are still recognized.
	wrapped := fmt.Errorf("handler: %w", err)
	kind, ok = KindOf(wrapped)
	if !ok || kind != KindForbidden {
		t.Errorf("KindOf(wrapped) = (%q, %v), want (forbidden, true)", kind, ok)
	}

	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("KindOf recognized a plain error")
	}
	if _, ok := KindOf(nil); ok {
		t.Error("KindOf recognized nil")
	}
}

func TestIsKind(t *testing.T) {
	err := newError(KindDuplicatePending, "pending already")

	if !IsKind(err, KindDuplicatePending) {
		t.Error("IsKind missed a matching kind")
	}
	if IsKind(err, KindNotFound) {
		t.Error("IsKind matched the wrong kind")
	}
	if IsKind(errors.New("plain"), KindNotFound) {
		t.Error("IsKind matched a plain error")
	}
}

func TestWrapErrorPreservesCause(t *testing.T) {
	cause := errors.New("disk on fire")
	err := wrapError(KindConsistency, "partial write", cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped error lost its cause")
	}
	if err.Error() != "partial write" {
		t.Errorf("Error() = %q, want the message, not the cause", err.Error())
	}
}
