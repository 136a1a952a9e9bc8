package ids

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// Generator supplies identifiers for new resources.
type Generator interface {
	NextID() string
}

// HexGenerator produces 32 character lowercase hex ids from random UUIDs.
type HexGenerator struct{}

// NewHexGenerator constructs HexGenerator.
func NewHexGenerator() HexGenerator {
	return HexGenerator{}
}

// NextID returns a fresh identifier.
func (HexGenerator) NextID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func() string

// NextID calls f.
func (f GeneratorFunc) NextID() string {
	return f()
}
