// Package utils provides small helpers shared by the client packages.
package utils

import "github.com/google/uuid"

// NewSessionID returns a time-ordered UUIDv7 identifying one run of the
// application in the logs. It falls back to a random UUIDv4.
func NewSessionID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
