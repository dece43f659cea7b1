package utils

import "github.com/google/uuid"

// UUIDGenerator produces opaque, collision-resistant identifiers for
// sessions and reset tokens. UUIDv7 is preferred for its time-ordered
// layout; generation falls back to UUIDv4 if the monotonic source fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
