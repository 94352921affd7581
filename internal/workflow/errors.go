package workflow

import "errors"

// Kind classifies a workflow error so handlers can map it to an HTTP status
// and callers can decide whether retrying makes sense.
type Kind string

const (
	// KindValidation - malformed input, recoverable by correcting the input.
	KindValidation Kind = "validation"
	// KindAlreadyExists - the owner already has an idea record.
	KindAlreadyExists Kind = "already_exists"
	// KindDuplicatePending - a pending supervision request already exists.
	KindDuplicatePending Kind = "duplicate_pending"
	// KindInvalidState - the operation does not apply to the current state.
	KindInvalidState Kind = "invalid_state"
	// KindForbidden - the caller is not the owner/supervisor of the record.
	KindForbidden Kind = "forbidden"
	// KindNotFound - a referenced entity does not exist.
	KindNotFound Kind = "not_found"
	// KindConsistency - a partial two-record write was detected and could not
	// be repaired. Fatal: surfaced to the operator path, never retried blindly.
	KindConsistency Kind = "consistency"
)

// Error is a workflow failure carrying a kind and a user-presentable message.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func wrapError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// KindOf returns the kind of a workflow error. The second return is false
// for any error that is not a workflow error.
func KindOf(err error) (Kind, bool) {
	var we *Error
	if errors.As(err, &we) {
		return we.Kind, true
	}
	return "", false
}

// IsKind reports whether err is a workflow error of the given kind.
func IsKind(err error, kind Kind) bool {
	got, ok := KindOf(err)
	return ok && got == kind
}
