package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
)

// AvailabilityPatternRepository implements the availability pattern
// repository interface using GORM
type AvailabilityPatternRepository struct {
	db *gorm.DB
}

// NewAvailabilityPatternRepository creates a new availability pattern repository
func NewAvailabilityPatternRepository(db *gorm.DB) *AvailabilityPatternRepository {
	return &AvailabilityPatternRepository{
		db: db,
	}
}

// FindByUserID finds the learned pattern for a user
func (r *AvailabilityPatternRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entities.AvailabilityPattern, error) {
	var pattern entities.AvailabilityPattern
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&pattern).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrPatternNotFound
		}
		return nil, fmt.Errorf("failed to find availability pattern: %w", err)
	}
	return &pattern, nil
}

// Upsert creates or replaces the pattern for a user
func (r *AvailabilityPatternRepository) Upsert(ctx context.Context, pattern *entities.AvailabilityPattern) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"work_start", "work_end", "buffer_minutes", "updated_at"}),
		}).
		Create(pattern).Error; err != nil {
		return fmt.Errorf("failed to upsert availability pattern: %w", err)
	}
	return nil
}
