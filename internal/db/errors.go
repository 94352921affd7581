package db

import "errors"

// Domain-level database error sentinels. Idea and supervision request
// lookups return the workflow package's contract sentinels instead, since
// the coordinator owns those semantics.
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Event errors
	ErrEventNotFound = errors.New("event not found")

	// Club errors
	ErrClubNotFound = errors.New("club not found")
)
