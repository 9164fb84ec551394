package domain

import "github.com/google/uuid"

// NewID returns a collision-resistant unique identifier. UUIDv7 keeps the
// timestamp prefix so records sort roughly by creation time; if the entropy
// source fails we fall back to a random v4.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
