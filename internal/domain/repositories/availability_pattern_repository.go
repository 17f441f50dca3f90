package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
)

// AvailabilityPatternRepository defines the interface for learned
// availability pattern data access
type AvailabilityPatternRepository interface {
	// FindByUserID finds the pattern for a user; returns
	// entities.ErrPatternNotFound when none has been learned yet
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entities.AvailabilityPattern, error)

	// Upsert creates or replaces the pattern for a user
	Upsert(ctx context.Context, pattern *entities.AvailabilityPattern) error
}
