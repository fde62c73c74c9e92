package diag

import (
	"fmt"

	"lexkit/internal/source"
)

// Error is a single terminal failure with a precise source location. It is
// the value scanning and token accessors return; callers render it however
// they like (the CLI turns it into a Diagnostic).
type Error struct {
	Code    Code
	Message string
	Loc     source.Location
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Loc, e.Message)
}

// Errorf builds an Error with a formatted message.
func Errorf(code Code, loc source.Location, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Loc:     loc,
	}
}

// Diagnostic converts the error into an error-severity Diagnostic.
func (e *Error) Diagnostic() Diagnostic {
	return NewError(e.Code, e.Loc, e.Message)
}
