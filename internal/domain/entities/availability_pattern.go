package entities

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityPattern is a learned per-user scheduling pattern: the working
// hours a user historically prefers and the buffer they keep between
// meetings. Used to derive default constraints when resolving participants.
type AvailabilityPattern struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID        uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex"`
	WorkStart     string    `json:"work_start" gorm:"type:varchar(5);not null;default:'09:00'"` // "HH:MM"
	WorkEnd       string    `json:"work_end" gorm:"type:varchar(5);not null;default:'17:00'"`   // "HH:MM"
	BufferMinutes int       `json:"buffer_minutes" gorm:"not null;default:15"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for AvailabilityPattern
func (AvailabilityPattern) TableName() string {
	return "availability_patterns"
}
