package listing

import "errors"

var (
	// ErrNotFound is returned when no listing matches the requested id.
	ErrNotFound = errors.New("business not found")

	// ErrNotOwner is returned when a caller tries to update a listing they
	// do not own.
	ErrNotOwner = errors.New("not the owner of this business")

	// ErrMissingName is returned when a submitted draft has no business name
	// at all; everything else is accepted as-is.
	ErrMissingName = errors.New("business name is required")
)
