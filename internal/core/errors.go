package core

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated is returned by Gate.Enter when no session
// credential is stored. The caller redirects to the entry screen
// without issuing any service call.
var ErrNotAuthenticated = errors.New("no session credential; log in first")

// ValidationError rejects a mutation before any service call is made.
// It blocks the action locally: the collections and the service are
// both left untouched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a local pre-call rejection.
func IsValidation(err error) bool {
	var v *ValidationError

	return errors.As(err, &v)
}
