package utils

import "github.com/google/uuid"

// UUIDGenerator hands out trace ids for incoming requests. The zero value
// is ready to use.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 so that ids sort by creation time. If the clock
// source fails it falls back to a random v4.
func (*UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
