package rides

import "errors"

// ErrNotOwner is returned when a cancel is attempted for a ride this device
// has no valid history token for.
var ErrNotOwner = errors.New("ride was not published from this device")

// ErrRideNotFound is returned when a ride id does not resolve to a record
var ErrRideNotFound = errors.New("ride not found")

// ValidationError marks user input that fails a local precondition. Surfaced
// to the UI layer directly; never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// NewValidationError builds a ValidationError for a single field
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
