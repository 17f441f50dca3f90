package idgen

import "github.com/google/uuid"

// Provider generates identifiers for persisted records. Injected so tests can
// substitute a deterministic sequence.
type Provider interface {
	NewID() uuid.UUID
}

// UUIDProvider generates random v4 UUIDs
type UUIDProvider struct{}

// New creates the default UUID provider
func New() UUIDProvider {
	return UUIDProvider{}
}

// NewID returns a new random UUID
func (UUIDProvider) NewID() uuid.UUID {
	return uuid.New()
}
