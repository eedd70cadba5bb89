package session

import (
	"fmt"
	"strings"
)

// ValidationError reports a bad session-creation parameter. Nothing is
// persisted when creation fails validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidTransitionError reports a state-machine guard violation,
// naming the attempted operation and the session's current status.
type InvalidTransitionError struct {
	Op     string
	Status Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s: session is %s", e.Op, e.Status)
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
