package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors. Expected rejections
// (a citation failing the allowlist, a query classified as ambiguous)
// are not errors at all; they are nil/zero results.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidPreferences indicates a preference document failed
	// structural validation. The store recovers by discarding the
	// document and returning defaults.
	ErrInvalidPreferences = errors.New("invalid preference document")

	// ErrGeneratorUnavailable indicates the generation backend is not
	// configured. Routed queries that need generation run in degraded
	// mode instead.
	ErrGeneratorUnavailable = errors.New("generation backend unavailable")

	// ErrStorageFailure indicates the persistence backend failed.
	// Preference saves surface this as a false return, never a panic.
	ErrStorageFailure = errors.New("storage failure")

	// ErrResponseBlocked indicates generated text failed safety
	// validation with errors (not warnings) and must not be displayed.
	ErrResponseBlocked = errors.New("response blocked by safety validation")
)
