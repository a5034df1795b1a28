package cqrs

import "errors"

// Failure taxonomy shared by command and query services. Handlers translate
// these to HTTP statuses with errors.Is; everything else is a 500.
var (
	// ErrInvalidInput: the request is malformed. Never retried.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound: the target record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden: the actor may not perform this mutation. Raised before
	// any state change, so a forbidden request never mutates anything and
	// never emits an event.
	ErrForbidden = errors.New("forbidden")

	// ErrUpdateFailed: the store write did not apply, e.g. the record
	// vanished between read and write. Deliberately generic so storage
	// internals do not leak to callers.
	ErrUpdateFailed = errors.New("update failed")
)
