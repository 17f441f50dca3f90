package scheduling

// TimeWindow is a wall-clock time-of-day window ("HH:MM" strings)
type TimeWindow struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// Preferences represents optional organizer scheduling preferences
type Preferences struct {
	PreferredTimes         []TimeWindow `json:"preferred_times,omitempty" validate:"omitempty,dive"`
	AvoidTimes             []TimeWindow `json:"avoid_times,omitempty" validate:"omitempty,dive"`
	PreferredDays          []int        `json:"preferred_days,omitempty" validate:"omitempty,dive,min=0,max=6"`
	AvoidDays              []int        `json:"avoid_days,omitempty" validate:"omitempty,dive,min=0,max=6"`
	Timezone               string       `json:"timezone,omitempty"`
	MaxParticipants        int          `json:"max_participants,omitempty" validate:"omitempty,min=2"`
	RequireAllParticipants bool         `json:"require_all_participants,omitempty"`
}

// ScheduleMeetingRequest represents the request to schedule a meeting
type ScheduleMeetingRequest struct {
	Title              string       `json:"title" validate:"required,min=1,max=255"`
	ParticipantEmails  []string     `json:"participant_emails" validate:"required,min=1,dive,email"`
	DurationMinutes    int          `json:"duration_minutes" validate:"required,min=5,max=480"`
	MeetingType        string       `json:"meeting_type" validate:"required,oneof=one_on_one team interview presentation workshop standup"`
	Priority           string       `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	LocationType       string       `json:"location_type,omitempty" validate:"omitempty,oneof=virtual in_person hybrid"`
	LocationDetails    *string      `json:"location_details,omitempty"`
	Agenda             *string      `json:"agenda,omitempty"`
	PreparationMinutes int          `json:"preparation_minutes,omitempty" validate:"omitempty,min=0,max=120"`
	BufferMinutes      int          `json:"buffer_minutes,omitempty" validate:"omitempty,min=0,max=120"`
	Preferences        *Preferences `json:"preferences,omitempty"`
}

// ConfirmSlotRequest represents the request to confirm a suggested slot
type ConfirmSlotRequest struct {
	SlotID string `json:"slot_id" validate:"required,uuid"`
}
