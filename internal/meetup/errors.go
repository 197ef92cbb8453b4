package meetup

import "errors"

var (
	// ErrForbidden covers both a wrong role on create and a
	// non-participant touching a record. The caller gets a generic
	// "forbidden" either way.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound reports a missing meetup id.
	ErrNotFound = errors.New("not found")

	// ErrTargetNotFound reports a create-time target id absent from the
	// opposite role's directory. Distinct from ErrNotFound so the wire
	// message can name the target.
	ErrTargetNotFound = errors.New("target user not found")
)

// ValidationError reports malformed input on a specific field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}
