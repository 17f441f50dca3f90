package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
)

// TimeSlotRepository implements the candidate slot repository interface
// using GORM
type TimeSlotRepository struct {
	db *gorm.DB
}

// NewTimeSlotRepository creates a new time slot repository
func NewTimeSlotRepository(db *gorm.DB) *TimeSlotRepository {
	return &TimeSlotRepository{
		db: db,
	}
}

// Create persists one candidate slot
func (r *TimeSlotRepository) Create(ctx context.Context, slot *entities.MeetingTimeSlot) error {
	if err := r.db.WithContext(ctx).Create(slot).Error; err != nil {
		return fmt.Errorf("failed to create time slot: %w", err)
	}
	return nil
}

// FindByID finds a candidate slot by ID
func (r *TimeSlotRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.MeetingTimeSlot, error) {
	var slot entities.MeetingTimeSlot
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&slot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrTimeSlotNotFound
		}
		return nil, fmt.Errorf("failed to find time slot by ID: %w", err)
	}
	return &slot, nil
}

// FindByMeetingRequestID lists slots for a request, best score first
func (r *TimeSlotRepository) FindByMeetingRequestID(ctx context.Context, requestID uuid.UUID) ([]*entities.MeetingTimeSlot, error) {
	var slots []*entities.MeetingTimeSlot
	if err := r.db.WithContext(ctx).
		Where("meeting_request_id = ?", requestID).
		Order("score DESC").
		Find(&slots).Error; err != nil {
		return nil, fmt.Errorf("failed to list time slots: %w", err)
	}
	return slots, nil
}
