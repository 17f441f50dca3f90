package scheduling

import (
	"reflect"
	"testing"
	"time"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
)

// participantWith returns a participant whose whole Monday carries the given
// status.
func participantWith(email string, status entities.AvailabilityStatus) *entities.Participant {
	return &entities.Participant{
		Email:    email,
		Timezone: "UTC",
		Availability: []entities.AvailabilitySlot{
			{
				Start:  time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
				End:    time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
				Status: status,
			},
		},
	}
}

func slotAt(hour, minute, durationMinutes int) candidateSlot {
	start := time.Date(2025, 6, 2, hour, minute, 0, 0, time.UTC) // Monday
	return candidateSlot{Start: start, End: start.Add(time.Duration(durationMinutes) * time.Minute)}
}

func teamInput() *ScheduleMeetingInput {
	return &ScheduleMeetingInput{
		Title:           "Sync",
		MeetingType:     entities.MeetingTypeTeam,
		Priority:        entities.MeetingPriorityMedium,
		DurationMinutes: 30,
	}
}

func TestScoreSlot_Deterministic(t *testing.T) {
	input := teamInput()
	participants := []*entities.Participant{
		participantWith("alice@example.com", entities.AvailabilityStatusFree),
		participantWith("bob@example.com", entities.AvailabilityStatusBusy),
	}
	slot := slotAt(10, 0, 30)

	first := scoreSlot(slot, input, participants)
	second := scoreSlot(slot, input, participants)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("scoring is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestScoreSlot_AllFreeClampsTo100(t *testing.T) {
	// Monday 10:00: free +5, morning +10, weekday +5 on a base of 100.
	got := scoreSlot(slotAt(10, 0, 30), teamInput(), []*entities.Participant{
		participantWith("alice@example.com", entities.AvailabilityStatusFree),
	})

	if got.Score != 100 {
		t.Fatalf("score = %d, want 100", got.Score)
	}
	if got.Confidence != 1.0 {
		t.Fatalf("confidence = %v, want 1.0", got.Confidence)
	}
	if got.Summary.Free != 1 || got.Summary.Busy != 0 {
		t.Fatalf("unexpected summary %+v", got.Summary)
	}
	if got.Reasoning != fallbackReasoning {
		t.Fatalf("reasoning = %q, want fallback", got.Reasoning)
	}
}

func TestScoreSlot_BusyConflict(t *testing.T) {
	// Monday 13:00: busy -30, weekday +5, no time-of-day bonus.
	got := scoreSlot(slotAt(13, 0, 30), teamInput(), []*entities.Participant{
		participantWith("bob@example.com", entities.AvailabilityStatusBusy),
	})

	if got.Score != 75 {
		t.Fatalf("score = %d, want 75", got.Score)
	}
	if len(got.Conflicts) != 1 || got.Conflicts[0] != "bob@example.com" {
		t.Fatalf("conflicts = %v, want [bob@example.com]", got.Conflicts)
	}
	if got.Summary.Busy != 1 {
		t.Fatalf("summary.Busy = %d, want 1", got.Summary.Busy)
	}
	// Conflicted slot loses the +0.1 no-conflict confidence bonus.
	if got.Confidence != 0.9 {
		t.Fatalf("confidence = %v, want 0.9", got.Confidence)
	}
}

func TestScoreSlot_TentativeAndOutOfOffice(t *testing.T) {
	tentative := scoreSlot(slotAt(13, 0, 30), teamInput(), []*entities.Participant{
		participantWith("carol@example.com", entities.AvailabilityStatusTentative),
	})
	if tentative.Score != 95 {
		t.Fatalf("tentative score = %d, want 95", tentative.Score)
	}
	if tentative.Summary.Tentative != 1 {
		t.Fatalf("summary.Tentative = %d, want 1", tentative.Summary.Tentative)
	}
	if len(tentative.Conflicts) != 0 {
		t.Fatalf("tentative should not be a conflict, got %v", tentative.Conflicts)
	}

	ooo := scoreSlot(slotAt(13, 0, 30), teamInput(), []*entities.Participant{
		participantWith("dave@example.com", entities.AvailabilityStatusOutOfOffice),
	})
	if ooo.Score != 55 {
		t.Fatalf("out-of-office score = %d, want 55", ooo.Score)
	}
	if len(ooo.Conflicts) != 1 {
		t.Fatalf("out-of-office should conflict, got %v", ooo.Conflicts)
	}
}

func TestScoreSlot_EarlyMorningPenalty(t *testing.T) {
	// Monday 08:00: free +5, outside-business-hours -15, weekday +5.
	got := scoreSlot(slotAt(8, 0, 30), teamInput(), []*entities.Participant{
		participantWith("alice@example.com", entities.AvailabilityStatusFree),
	})

	if got.Score != 95 {
		t.Fatalf("score = %d, want 95", got.Score)
	}
	if got.Reasoning != "Outside typical business hours" {
		t.Fatalf("reasoning = %q", got.Reasoning)
	}
}

func TestScoreSlot_BusinessHoursCloseBoundary(t *testing.T) {
	busy := []*entities.Participant{
		participantWith("bob@example.com", entities.AvailabilityStatusBusy),
	}

	// Monday 17:00: busy -30, weekday +5, no time-of-day adjustment.
	atClose := scoreSlot(slotAt(17, 0, 30), teamInput(), busy)
	if atClose.Score != 75 {
		t.Fatalf("17:00 score = %d, want 75", atClose.Score)
	}
	if atClose.Reasoning == "Outside typical business hours" {
		t.Fatalf("17:00 slot should not be penalized as outside business hours")
	}

	// Monday 18:00: same, plus outside-business-hours -15.
	afterClose := scoreSlot(slotAt(18, 0, 30), teamInput(), busy)
	if afterClose.Score != 60 {
		t.Fatalf("18:00 score = %d, want 60", afterClose.Score)
	}
	if afterClose.Reasoning != "Outside typical business hours" {
		t.Fatalf("18:00 reasoning = %q", afterClose.Reasoning)
	}
}

func TestScoreSlot_StandupPrefersNineAM(t *testing.T) {
	input := teamInput()
	input.MeetingType = entities.MeetingTypeStandup
	participants := []*entities.Participant{
		participantWith("bob@example.com", entities.AvailabilityStatusBusy),
	}

	nineAM := scoreSlot(slotAt(9, 0, 30), input, participants)
	fourPM := scoreSlot(slotAt(16, 0, 30), input, participants)

	if nineAM.Score <= fourPM.Score {
		t.Fatalf("9AM standup (%d) should outscore 4PM (%d)", nineAM.Score, fourPM.Score)
	}

	found := false
	for _, f := range nineAM.OptimalFactors {
		if f == "Optimal standup time" {
			found = true
		}
	}
	if !found {
		t.Fatalf("9AM standup missing standup factor: %v", nineAM.OptimalFactors)
	}
}

func TestScoreSlot_UrgentOverride(t *testing.T) {
	busy := []*entities.Participant{
		participantWith("bob@example.com", entities.AvailabilityStatusBusy),
	}

	medium := scoreSlot(slotAt(13, 0, 30), teamInput(), busy)

	urgentInput := teamInput()
	urgentInput.Priority = entities.MeetingPriorityUrgent
	urgent := scoreSlot(slotAt(13, 0, 30), urgentInput, busy)

	if urgent.Score != medium.Score+20 {
		t.Fatalf("urgent score = %d, want %d", urgent.Score, medium.Score+20)
	}

	tagged := false
	for _, f := range urgent.OptimalFactors {
		if f == "Urgent priority override" {
			tagged = true
		}
	}
	if !tagged {
		t.Fatalf("urgent conflicted slot missing override factor: %v", urgent.OptimalFactors)
	}

	// The override only applies when there is a conflict to override.
	free := []*entities.Participant{
		participantWith("alice@example.com", entities.AvailabilityStatusFree),
	}
	urgentFree := scoreSlot(slotAt(13, 0, 30), urgentInput, free)
	mediumFree := scoreSlot(slotAt(13, 0, 30), teamInput(), free)
	if urgentFree.Score != mediumFree.Score {
		t.Fatalf("urgent priority changed score without conflicts: %d vs %d", urgentFree.Score, mediumFree.Score)
	}
}

func TestScoreSlot_FridayPenalty(t *testing.T) {
	friday := time.Date(2025, 6, 6, 13, 0, 0, 0, time.UTC)
	slot := candidateSlot{Start: friday, End: friday.Add(30 * time.Minute)}

	got := scoreSlot(slot, teamInput(), []*entities.Participant{
		participantWith("alice@example.com", entities.AvailabilityStatusFree),
	})

	// Friday 13:00: free +5, Friday -5.
	if got.Score != 100 {
		t.Fatalf("score = %d, want 100", got.Score)
	}
	if got.Reasoning != "Friday meetings tend to see lower engagement" {
		t.Fatalf("reasoning = %q", got.Reasoning)
	}
}

func TestScoreSlot_NoAvailabilityDataLowersConfidence(t *testing.T) {
	noData := &entities.Participant{Email: "ghost@example.com", Timezone: "UTC"}

	got := scoreSlot(slotAt(13, 0, 30), teamInput(), []*entities.Participant{noData})

	if got.Confidence != 0.9 {
		t.Fatalf("confidence = %v, want 0.9 when availability data is missing", got.Confidence)
	}
	if got.Summary.Free != 0 || got.Summary.Busy != 0 || got.Summary.Tentative != 0 {
		t.Fatalf("no-data participant should not be counted in summary: %+v", got.Summary)
	}
}

func TestClampScore(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{-10, 0},
		{0, 0},
		{49.4, 49},
		{49.5, 50},
		{100, 100},
		{135, 100},
	}
	for _, tc := range cases {
		if got := clampScore(tc.in); got != tc.want {
			t.Fatalf("clampScore(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
