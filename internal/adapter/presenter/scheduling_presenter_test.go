package presenter

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
	"github.com/johnquangdev/meeting-scheduler/internal/usecase/scheduling"
)

func TestToSlotResponse_Formatting(t *testing.T) {
	start := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC) // Monday
	slot := &scheduling.ScoredSlot{
		ID:         uuid.New(),
		Start:      start,
		End:        start.Add(time.Hour),
		Score:      85,
		Confidence: 0.9,
		Reasoning:  "Good availability for all participants",
	}

	got := ToSlotResponse(slot)

	if got.StartTime != "2025-06-02T09:30:00Z" {
		t.Fatalf("start_time = %q", got.StartTime)
	}
	if got.EndTime != "2025-06-02T10:30:00Z" {
		t.Fatalf("end_time = %q", got.EndTime)
	}
	if got.DisplayDate != "Monday, June 2, 2025" {
		t.Fatalf("display_date = %q", got.DisplayDate)
	}
	if got.DisplayTime != "9:30 AM - 10:30 AM" {
		t.Fatalf("display_time = %q", got.DisplayTime)
	}
	if got.Score != 85 || got.Confidence != 0.9 {
		t.Fatalf("score/confidence not carried over: %+v", got)
	}
}

func TestToScheduleMeetingResponse(t *testing.T) {
	requestID := uuid.New()
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	result := &scheduling.SchedulingResult{
		MeetingRequestID: requestID,
		Outcome:          scheduling.OutcomeOK,
		SuggestedSlots: []scheduling.ScoredSlot{
			{ID: uuid.New(), Start: start, End: start.Add(30 * time.Minute), Score: 90},
		},
		Analysis: scheduling.SchedulingAnalysis{
			TotalSlotsEvaluated: 50,
			BestScore:           90,
			AverageScore:        72.5,
			Difficulty:          scheduling.DifficultyEasy,
		},
		ParticipantFeedback: map[string]scheduling.ParticipantFeedback{
			"alice@example.com": {AvailabilityRate: 1.0, ConstraintsMet: true},
		},
	}

	got := ToScheduleMeetingResponse(result)

	if got.MeetingRequestID != requestID.String() {
		t.Fatalf("meeting_request_id = %q", got.MeetingRequestID)
	}
	if got.Outcome != "ok" {
		t.Fatalf("outcome = %q", got.Outcome)
	}
	if len(got.SuggestedSlots) != 1 {
		t.Fatalf("got %d slots, want 1", len(got.SuggestedSlots))
	}
	if got.Analysis.Difficulty != "easy" || got.Analysis.AverageScore != 72.5 {
		t.Fatalf("analysis not carried over: %+v", got.Analysis)
	}
	if fb, ok := got.ParticipantFeedback["alice@example.com"]; !ok || fb.AvailabilityRate != 1.0 {
		t.Fatalf("feedback not carried over: %+v", got.ParticipantFeedback)
	}
}

func TestToMeetingResponse_DeserializesJSONColumns(t *testing.T) {
	requestID := uuid.New()
	request := &entities.MeetingRequest{
		ID:                requestID,
		OrganizerID:       uuid.New(),
		Title:             "Planning",
		ParticipantEmails: datatypes.JSON([]byte(`["a@example.com","b@example.com"]`)),
		DurationMinutes:   60,
		MeetingType:       entities.MeetingTypeTeam,
		Priority:          entities.MeetingPriorityMedium,
		LocationType:      entities.LocationTypeVirtual,
		Status:            entities.MeetingRequestStatusScheduled,
		SelectedSlot:      datatypes.JSON([]byte(`{"slot_id":"abc","score":90}`)),
	}

	slots := []*entities.MeetingTimeSlot{
		{
			ID:                  uuid.New(),
			MeetingRequestID:    requestID,
			StartTime:           time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
			EndTime:             time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC),
			Score:               90,
			Conflicts:           datatypes.JSON([]byte(`["c@example.com"]`)),
			AvailabilitySummary: datatypes.JSON([]byte(`{"free":2,"busy":1,"tentative":0}`)),
			OptimalFactors:      datatypes.JSON([]byte(`["Morning slot"]`)),
		},
	}

	got := ToMeetingResponse(request, slots)

	if len(got.ParticipantEmails) != 2 || got.ParticipantEmails[0] != "a@example.com" {
		t.Fatalf("participant_emails = %v", got.ParticipantEmails)
	}
	if got.SelectedSlot["slot_id"] != "abc" {
		t.Fatalf("selected_slot = %v", got.SelectedSlot)
	}
	if len(got.SuggestedSlots) != 1 {
		t.Fatalf("got %d slots, want 1", len(got.SuggestedSlots))
	}
	slot := got.SuggestedSlots[0]
	if len(slot.Conflicts) != 1 || slot.Conflicts[0] != "c@example.com" {
		t.Fatalf("conflicts = %v", slot.Conflicts)
	}
	if slot.AvailabilitySummary.Free != 2 || slot.AvailabilitySummary.Busy != 1 {
		t.Fatalf("availability_summary = %+v", slot.AvailabilitySummary)
	}
	if len(slot.OptimalFactors) != 1 || slot.OptimalFactors[0] != "Morning slot" {
		t.Fatalf("optimal_factors = %v", slot.OptimalFactors)
	}
}
