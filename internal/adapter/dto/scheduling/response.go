package scheduling

// AvailabilitySummaryResponse counts participant statuses for one slot
type AvailabilitySummaryResponse struct {
	Free      int `json:"free"`
	Busy      int `json:"busy"`
	Tentative int `json:"tentative"`
}

// SlotResponse represents a suggested time slot in responses
type SlotResponse struct {
	ID                  string                      `json:"id"`
	StartTime           string                      `json:"start_time"` // RFC 3339
	EndTime             string                      `json:"end_time"`   // RFC 3339
	DisplayDate         string                      `json:"display_date"`
	DisplayTime         string                      `json:"display_time"`
	Score               int                         `json:"score"`
	Confidence          float64                     `json:"confidence"`
	Reasoning           string                      `json:"reasoning"`
	Conflicts           []string                    `json:"conflicts"`
	AvailabilitySummary AvailabilitySummaryResponse `json:"availability_summary"`
	OptimalFactors      []string                    `json:"optimal_factors"`
}

// AnalysisResponse aggregates how the candidate evaluation went
type AnalysisResponse struct {
	TotalSlotsEvaluated int      `json:"total_slots_evaluated"`
	BestScore           int      `json:"best_score"`
	AverageScore        float64  `json:"average_score"`
	Difficulty          string   `json:"scheduling_difficulty"`
	Recommendations     []string `json:"recommendations"`
}

// ParticipantFeedbackResponse summarizes one participant's fit
type ParticipantFeedbackResponse struct {
	AvailabilityRate       float64  `json:"availability_rate"`
	ConstraintsMet         bool     `json:"constraints_met"`
	AlternativeSuggestions []string `json:"alternative_suggestions,omitempty"`
}

// ScheduleMeetingResponse represents the response after scheduling a meeting
type ScheduleMeetingResponse struct {
	MeetingRequestID    string                                 `json:"meeting_request_id"`
	Outcome             string                                 `json:"outcome"`
	SuggestedSlots      []*SlotResponse                        `json:"suggested_slots"`
	Analysis            *AnalysisResponse                      `json:"analysis"`
	ParticipantFeedback map[string]ParticipantFeedbackResponse `json:"participant_feedback"`
}

// MeetingResponse represents a stored meeting request with its slots
type MeetingResponse struct {
	ID                 string                 `json:"id"`
	OrganizerID        string                 `json:"organizer_id"`
	Title              string                 `json:"title"`
	ParticipantEmails  []string               `json:"participant_emails"`
	DurationMinutes    int                    `json:"duration_minutes"`
	MeetingType        string                 `json:"meeting_type"`
	Priority           string                 `json:"priority"`
	LocationType       string                 `json:"location_type"`
	LocationDetails    *string                `json:"location_details,omitempty"`
	Agenda             *string                `json:"agenda,omitempty"`
	PreparationMinutes int                    `json:"preparation_minutes"`
	BufferMinutes      int                    `json:"buffer_minutes"`
	Status             string                 `json:"status"`
	SelectedSlot       map[string]interface{} `json:"selected_slot,omitempty"`
	SuggestedSlots     []*SlotResponse        `json:"suggested_slots"`
	CreatedAt          string                 `json:"created_at"`
	UpdatedAt          string                 `json:"updated_at"`
}
