package rate

import "fmt"

// Error is a typed rate-resolution error.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrNoRateDefined means every lookup step exhausted; terminal for the
// booking attempt until an administrator defines a rate.
var ErrNoRateDefined = &Error{Code: "noRateDefined", Message: "no rate defined for counsellor, duration and locale"}
