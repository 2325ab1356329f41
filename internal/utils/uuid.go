package utils

import "github.com/google/uuid"

// UUIDGenerator issues identifiers for statement entries. UUIDv7 is
// preferred because the IDs sort by creation time.
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
