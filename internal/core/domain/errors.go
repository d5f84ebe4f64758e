package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidDocument indicates an encoded document failed schema validation.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrInvalidSettings indicates a settings file that parses but is not a JSON object.
	ErrInvalidSettings = errors.New("invalid settings")
)
