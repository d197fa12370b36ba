package id

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Generator creates opaque IDs suitable for external references.
type Generator interface {
	NewID() (string, error)
}

// UUIDGenerator emits version-4 UUIDs in canonical lowercase form
// (xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx, y in 8..b).
type UUIDGenerator struct {
	source io.Reader
}

func NewUUIDGenerator() *UUIDGenerator {
	return NewUUIDGeneratorFromReader(rand.Reader)
}

// NewUUIDGeneratorFromReader draws entropy from source instead of crypto/rand.
// Tests use it with a fixed byte stream to get repeatable IDs.
func NewUUIDGeneratorFromReader(source io.Reader) *UUIDGenerator {
	if source == nil {
		source = rand.Reader
	}
	return &UUIDGenerator{source: source}
}

func (g *UUIDGenerator) NewID() (string, error) {
	value, err := uuid.NewRandomFromReader(g.source)
	if err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return value.String(), nil
}

// IsValid reports whether raw is a canonical version-4 UUID as produced by
// UUIDGenerator.
func IsValid(raw string) bool {
	if len(raw) != 36 {
		return false
	}
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return false
	}
	return parsed.Version() == 4 && parsed.Variant() == uuid.RFC4122 && parsed.String() == raw
}
