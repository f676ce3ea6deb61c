package domain

import "errors"

// ============================================================================
// Birthdate Validation Errors
// ============================================================================

// InvalidBirthdateMessage is the only message a caller ever sees for a rejected
// birthdate, whatever rule failed.
const InvalidBirthdateMessage = "Invalid birthdate format"

// ValidationKind tells apart the rule a birthdate failed.
type ValidationKind string

const (
	KindMalformedFormat     ValidationKind = "malformed_format"
	KindOutOfRange          ValidationKind = "out_of_range"
	KindInvalidCalendarDate ValidationKind = "invalid_calendar_date"
)

// ValidationError is returned by ParseCalendarDate.
type ValidationError struct {
	Kind  ValidationKind
	Input string
}

func (e *ValidationError) Error() string {
	return InvalidBirthdateMessage
}

// Is matches any ValidationError of the same kind, so the sentinels below
// work with errors.Is regardless of the rejected input.
func (e *ValidationError) Is(target error) bool {
	var t *ValidationError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrMalformedFormat     = &ValidationError{Kind: KindMalformedFormat}
	ErrOutOfRange          = &ValidationError{Kind: KindOutOfRange}
	ErrInvalidCalendarDate = &ValidationError{Kind: KindInvalidCalendarDate}
)

// KindOf returns the validation kind carried by err, if any.
func KindOf(err error) (ValidationKind, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Kind, true
	}
	return "", false
}
