package composer

import "errors"

var (
	// ErrNoInstrumentSelected is the add-service gate: the dialog refuses to
	// open until an instrument group has been chosen and made active.
	ErrNoInstrumentSelected = errors.New("please select an instrument")

	// ErrNotAuthenticated is returned when a submit is attempted with an
	// unauthenticated session snapshot; the caller should show a login
	// prompt instead of firing the request.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrSubmitInFlight guards against a second submission while one is
	// still outstanding.
	ErrSubmitInFlight = errors.New("a submission is already in flight")

	// ErrMissingBusinessID is returned by the update path when no listing id
	// is known for the draft.
	ErrMissingBusinessID = errors.New("business id missing")
)

// submitFallbackMessage is shown when the server fails without a message of
// its own.
const submitFallbackMessage = "Failed to add business!"
