package reservation

import "fmt"

// Error is a typed reservation-engine error.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrInvalidBounds rejects requests where from >= to.
	ErrInvalidBounds = &Error{Code: "invalidBounds", Message: "reservation bounds must satisfy from < to"}
	// ErrWeekdayMismatch rejects requests whose declared weekday does not
	// match the actual interval weekday.
	ErrWeekdayMismatch = &Error{Code: "weekdayMismatch", Message: "declared weekday does not match interval weekday"}
	// ErrConflict rejects requests where an expanded occurrence overlaps an
	// existing interval. The whole request fails; nothing is persisted.
	ErrConflict = &Error{Code: "reservationConflict", Message: "reservation interval overlaps an existing reservation"}
	// ErrUnknownKind rejects recurrence kinds outside the fixed set.
	ErrUnknownKind = &Error{Code: "unknownRecurrenceKind", Message: "unsupported recurrence kind"}
)
