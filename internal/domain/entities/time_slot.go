package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MeetingTimeSlot is a persisted candidate slot for a meeting request. One
// record is written per suggested slot returned to the organizer.
//
// Invariants: Score lies in [0,100] and Confidence in [0,1].
type MeetingTimeSlot struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	MeetingRequestID uuid.UUID `json:"meeting_request_id" gorm:"type:uuid;not null;index"`
	StartTime        time.Time `json:"start_time" gorm:"type:timestamp;not null"`
	EndTime          time.Time `json:"end_time" gorm:"type:timestamp;not null"`
	Score            int       `json:"score" gorm:"not null"`
	Confidence       float64   `json:"confidence" gorm:"not null"`
	Reasoning        string    `json:"reasoning" gorm:"type:text"`

	// Serialized scoring detail
	Conflicts           datatypes.JSON `json:"conflicts" gorm:"type:jsonb;default:'[]'"`
	AvailabilitySummary datatypes.JSON `json:"availability_summary" gorm:"type:jsonb;default:'{}'"`
	OptimalFactors      datatypes.JSON `json:"optimal_factors" gorm:"type:jsonb;default:'[]'"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for MeetingTimeSlot
func (MeetingTimeSlot) TableName() string {
	return "meeting_time_slots"
}
