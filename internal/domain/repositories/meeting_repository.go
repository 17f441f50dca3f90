package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
)

// MeetingRequestRepository defines the interface for meeting request data access
type MeetingRequestRepository interface {
	// Create creates a new meeting request
	Create(ctx context.Context, request *entities.MeetingRequest) error

	// FindByID finds a meeting request by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.MeetingRequest, error)

	// FindByOrganizerID lists meeting requests for an organizer, newest first
	FindByOrganizerID(ctx context.Context, organizerID uuid.UUID, limit, offset int) ([]*entities.MeetingRequest, error)

	// Update updates a meeting request (status / selected slot)
	Update(ctx context.Context, request *entities.MeetingRequest) error
}

// TimeSlotRepository defines the interface for candidate slot data access
type TimeSlotRepository interface {
	// Create persists one candidate slot
	Create(ctx context.Context, slot *entities.MeetingTimeSlot) error

	// FindByID finds a candidate slot by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.MeetingTimeSlot, error)

	// FindByMeetingRequestID lists slots for a request, best score first
	FindByMeetingRequestID(ctx context.Context, requestID uuid.UUID) ([]*entities.MeetingTimeSlot, error)
}
