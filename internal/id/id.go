package id

import "github.com/google/uuid"

// GenerateID creates a unique identifier for new sessions.
func GenerateID() string {
	return uuid.NewString()
}
