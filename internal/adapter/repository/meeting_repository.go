package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
)

// MeetingRequestRepository implements the meeting request repository
// interface using GORM
type MeetingRequestRepository struct {
	db *gorm.DB
}

// NewMeetingRequestRepository creates a new meeting request repository
func NewMeetingRequestRepository(db *gorm.DB) *MeetingRequestRepository {
	return &MeetingRequestRepository{
		db: db,
	}
}

// Create creates a new meeting request
func (r *MeetingRequestRepository) Create(ctx context.Context, request *entities.MeetingRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return fmt.Errorf("failed to create meeting request: %w", err)
	}
	return nil
}

// FindByID finds a meeting request by ID
func (r *MeetingRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.MeetingRequest, error) {
	var request entities.MeetingRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrMeetingRequestNotFound
		}
		return nil, fmt.Errorf("failed to find meeting request by ID: %w", err)
	}
	return &request, nil
}

// FindByOrganizerID lists meeting requests for an organizer, newest first
func (r *MeetingRequestRepository) FindByOrganizerID(ctx context.Context, organizerID uuid.UUID, limit, offset int) ([]*entities.MeetingRequest, error) {
	var requests []*entities.MeetingRequest
	if err := r.db.WithContext(ctx).
		Where("organizer_id = ?", organizerID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed to list meeting requests: %w", err)
	}
	return requests, nil
}

// Update updates a meeting request
func (r *MeetingRequestRepository) Update(ctx context.Context, request *entities.MeetingRequest) error {
	if err := r.db.WithContext(ctx).Save(request).Error; err != nil {
		return fmt.Errorf("failed to update meeting request: %w", err)
	}
	return nil
}
