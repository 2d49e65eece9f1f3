package uuidgen

import (
	"github.com/google/uuid"

	"github.com/bikya/bikya-backend/internal/domain/contract"
)

// Generator issues random UUIDv4 identifiers.
type Generator struct{}

var _ contract.IUUIDGenerator = (*Generator)(nil)

// NewGenerator creates a new UUID generator.
func NewGenerator() contract.IUUIDGenerator {
	return &Generator{}
}

// NewUUID generates a new UUID.
func (g *Generator) NewUUID() string {
	return uuid.New().String()
}
