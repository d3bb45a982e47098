package domain

import "github.com/google/uuid"

// NewEntryID creates a new unique log entry identifier.
func NewEntryID() string {
	return uuid.New().String()
}
