package utils

import "github.com/google/uuid"

// UUIDGenerator hands out time-ordered identifiers for sync cycles and
// request traces.
type UUIDGenerator struct{}

func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

// Generate falls back to a random v4 id when the v7 clock source fails.
func (UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.New().String()
}
