package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers. Mutation IDs double as
// idempotency keys, so ordering by ID follows enqueue order.
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
