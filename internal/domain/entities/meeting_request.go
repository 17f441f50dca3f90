package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MeetingType represents the type of meeting being scheduled
type MeetingType string

const (
	MeetingTypeOneOnOne     MeetingType = "one_on_one"
	MeetingTypeTeam         MeetingType = "team"
	MeetingTypeInterview    MeetingType = "interview"
	MeetingTypePresentation MeetingType = "presentation"
	MeetingTypeWorkshop     MeetingType = "workshop"
	MeetingTypeStandup      MeetingType = "standup"
)

// IsValid checks if the meeting type is valid
func (t MeetingType) IsValid() bool {
	switch t {
	case MeetingTypeOneOnOne, MeetingTypeTeam, MeetingTypeInterview,
		MeetingTypePresentation, MeetingTypeWorkshop, MeetingTypeStandup:
		return true
	}
	return false
}

// MeetingPriority represents the priority of a meeting request
type MeetingPriority string

const (
	MeetingPriorityLow    MeetingPriority = "low"
	MeetingPriorityMedium MeetingPriority = "medium"
	MeetingPriorityHigh   MeetingPriority = "high"
	MeetingPriorityUrgent MeetingPriority = "urgent"
)

// LocationType represents where a meeting takes place
type LocationType string

const (
	LocationTypeVirtual  LocationType = "virtual"
	LocationTypeInPerson LocationType = "in_person"
	LocationTypeHybrid   LocationType = "hybrid"
)

// MeetingRequestStatus represents the current status of a meeting request
type MeetingRequestStatus string

const (
	MeetingRequestStatusPending   MeetingRequestStatus = "pending"
	MeetingRequestStatusScheduled MeetingRequestStatus = "scheduled"
)

// TimeWindow is a wall-clock time-of-day window expressed as "HH:MM" strings.
type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SchedulingPreferences holds optional organizer preferences for a meeting
// request. Stored serialized on the request record.
type SchedulingPreferences struct {
	PreferredTimes         []TimeWindow `json:"preferred_times,omitempty"`
	AvoidTimes             []TimeWindow `json:"avoid_times,omitempty"`
	PreferredDays          []int        `json:"preferred_days,omitempty"` // time.Weekday values
	AvoidDays              []int        `json:"avoid_days,omitempty"`
	Timezone               string       `json:"timezone,omitempty"`
	MaxParticipants        int          `json:"max_participants,omitempty"`
	RequireAllParticipants bool         `json:"require_all_participants,omitempty"`
}

// MeetingRequest represents a request to schedule a meeting. It is written
// once per scheduling invocation; only Status and SelectedSlot mutate
// afterwards, when the organizer confirms a slot.
type MeetingRequest struct {
	ID                 uuid.UUID            `json:"id" gorm:"type:uuid;primary_key"`
	OrganizerID        uuid.UUID            `json:"organizer_id" gorm:"type:uuid;not null;index"`
	Organizer          *User                `json:"organizer,omitempty" gorm:"foreignKey:OrganizerID"`
	Title              string               `json:"title" gorm:"type:varchar(255);not null"`
	ParticipantEmails  datatypes.JSON       `json:"participant_emails" gorm:"type:jsonb;not null"`
	DurationMinutes    int                  `json:"duration_minutes" gorm:"not null"`
	MeetingType        MeetingType          `json:"meeting_type" gorm:"type:varchar(20);not null;default:'team'"`
	Priority           MeetingPriority      `json:"priority" gorm:"type:varchar(10);not null;default:'medium'"`
	LocationType       LocationType         `json:"location_type" gorm:"type:varchar(20);not null;default:'virtual'"`
	LocationDetails    *string              `json:"location_details,omitempty" gorm:"type:text"`
	Agenda             *string              `json:"agenda,omitempty" gorm:"type:text"`
	PreparationMinutes int                  `json:"preparation_minutes" gorm:"default:0"`
	BufferMinutes      int                  `json:"buffer_minutes" gorm:"default:0"`
	Preferences        datatypes.JSON       `json:"preferences" gorm:"type:jsonb;default:'{}'"`
	Status             MeetingRequestStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	SelectedSlot       datatypes.JSON       `json:"selected_slot,omitempty" gorm:"type:jsonb"`
	CreatedAt          time.Time            `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt          time.Time            `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for MeetingRequest
func (MeetingRequest) TableName() string {
	return "meeting_requests"
}

// IsPending checks if the request is still awaiting confirmation
func (m *MeetingRequest) IsPending() bool {
	return m.Status == MeetingRequestStatusPending
}

// Confirm marks the request as scheduled with the chosen slot summary
func (m *MeetingRequest) Confirm(selectedSlot datatypes.JSON) {
	m.Status = MeetingRequestStatusScheduled
	m.SelectedSlot = selectedSlot
	m.UpdatedAt = time.Now()
}
