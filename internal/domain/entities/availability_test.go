package entities

import (
	"testing"
	"time"
)

func interval(startHour, endHour int) (time.Time, time.Time) {
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	return day.Add(time.Duration(startHour) * time.Hour), day.Add(time.Duration(endHour) * time.Hour)
}

func TestAvailabilitySlotOverlaps(t *testing.T) {
	start, end := interval(10, 11)
	slot := AvailabilitySlot{Start: start, End: end, Status: AvailabilityStatusBusy}

	cases := []struct {
		name       string
		start, end int
		want       bool
	}{
		{"identical", 10, 11, true},
		{"contained", 10, 12, true},
		{"partial left", 9, 11, true},
		{"touching end", 11, 12, false},
		{"touching start", 9, 10, false},
		{"disjoint", 13, 14, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, e := interval(tc.start, tc.end)
			if got := slot.Overlaps(s, e); got != tc.want {
				t.Fatalf("Overlaps(%d:00, %d:00) = %v, want %v", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestParticipantStatusAt_FirstOverlapWins(t *testing.T) {
	busyStart, busyEnd := interval(10, 11)
	freeStart, freeEnd := interval(10, 12)

	p := &Participant{
		Email: "alice@example.com",
		Availability: []AvailabilitySlot{
			{Start: busyStart, End: busyEnd, Status: AvailabilityStatusBusy},
			{Start: freeStart, End: freeEnd, Status: AvailabilityStatusFree},
		},
	}

	queryStart, queryEnd := interval(10, 11)
	status, ok := p.StatusAt(queryStart, queryEnd)
	if !ok {
		t.Fatal("expected an overlapping interval")
	}
	if status != AvailabilityStatusBusy {
		t.Fatalf("status = %s, want busy (first overlapping interval)", status)
	}
}

func TestParticipantStatusAt_NoOverlap(t *testing.T) {
	slotStart, slotEnd := interval(10, 11)
	p := &Participant{
		Email: "alice@example.com",
		Availability: []AvailabilitySlot{
			{Start: slotStart, End: slotEnd, Status: AvailabilityStatusFree},
		},
	}

	queryStart, queryEnd := interval(14, 15)
	if _, ok := p.StatusAt(queryStart, queryEnd); ok {
		t.Fatal("expected no overlap for a disjoint interval")
	}
}
