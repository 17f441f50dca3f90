package calendar

import (
	"context"
	"time"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
)

// NoopProvider is the default availability provider. No live calendar
// integration is wired yet, so it reports no intervals for every user; the
// scoring engine then treats registered users like participants without
// calendar data.
type NoopProvider struct{}

// NewNoopProvider creates the no-op provider
func NewNoopProvider() NoopProvider {
	return NoopProvider{}
}

// FetchAvailability always returns an empty interval list
func (NoopProvider) FetchAvailability(_ context.Context, _ *entities.User, _, _ time.Time) ([]entities.AvailabilitySlot, error) {
	return nil, nil
}
