package uuidx

import "github.com/google/uuid"

// New returns a fresh version 7 UUID. Version 7 ids are time-ordered, which
// keeps broker instance ids sortable in log output. Panics if generation fails.
func New() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// NewString returns a fresh version 7 UUID rendered as a string.
func NewString() string {
	return New().String()
}
