package utils

import "github.com/google/uuid"

// UUIDGenerator produces store-level document identifiers.
//
// Time-ordered UUIDv7 values are preferred so that freshly created documents
// sort roughly by creation time; generation falls back to a random UUIDv4 if
// the system clock source fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new unique identifier string.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
