package utils

import "github.com/google/uuid"

// UUIDGenerator issues collision-resistant identifiers for offline-created
// records. A counter would collide across tills that record sales
// independently before any sync happens, so ids are always random UUIDs,
// v7 when available (time-ordered, which keeps local indexes tidy).
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
