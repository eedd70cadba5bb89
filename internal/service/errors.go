package service

import "fmt"

// GenerationError reports that the question generator could not produce
// a set for the session. The session is reverted to pending so the
// client may retry.
type GenerationError struct {
	SessionID string
	Reason    string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("question generation failed for session %s: %s", e.SessionID, e.Reason)
}
