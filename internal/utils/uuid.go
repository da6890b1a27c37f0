package utils

import "github.com/google/uuid"

// UUIDGenerator produces the application-side primary keys. Vault ids in
// particular must exist before the INSERT so that content can be encrypted
// under the real id in a single phase.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7 string, falling back to a random
// UUIDv4 if the monotonic source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
