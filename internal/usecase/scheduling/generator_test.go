package scheduling

import (
	"testing"
	"time"

	"github.com/johnquangdev/meeting-scheduler/pkg/config"
)

func testSchedulerConfig() config.SchedulerConfig {
	return config.SchedulerConfig{
		HorizonDays:          7,
		SlotStepMinutes:      30,
		BusinessHoursOpen:    8,
		BusinessHoursClose:   18,
		MaxSuggestedSlots:    5,
		DefaultWorkStart:     "09:00",
		DefaultWorkEnd:       "17:00",
		DefaultBufferMinutes: 15,
	}
}

// Monday 2025-06-02 00:00 UTC
func mondayMidnight() time.Time {
	return time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
}

func TestGenerateCandidateSlots_DurationAndBounds(t *testing.T) {
	cfg := testSchedulerConfig()
	slots := generateCandidateSlots(mondayMidnight(), 60, nil, cfg)

	if len(slots) == 0 {
		t.Fatal("expected candidate slots")
	}

	for _, s := range slots {
		if got := s.End.Sub(s.Start); got != 60*time.Minute {
			t.Fatalf("slot %v has duration %v, want 60m", s.Start, got)
		}
		if s.Start.Hour() < cfg.BusinessHoursOpen {
			t.Fatalf("slot starts before business hours: %v", s.Start)
		}
		closeAt := time.Date(s.Start.Year(), s.Start.Month(), s.Start.Day(), cfg.BusinessHoursClose, 0, 0, 0, time.UTC)
		if s.End.After(closeAt) {
			t.Fatalf("slot ends after close: %v", s.End)
		}
	}
}

func TestGenerateCandidateSlots_CloseBoundary(t *testing.T) {
	// A 60-minute meeting can start at 17:00 at the latest (ends exactly at
	// 18:00); no slot may start at 17:30.
	slots := generateCandidateSlots(mondayMidnight(), 60, nil, testSchedulerConfig())

	last := slots[0]
	for _, s := range slots {
		if s.Start.Day() == last.Start.Day() && s.Start.After(last.Start) {
			last = s
		}
	}
	if last.Start.Hour() != 17 || last.Start.Minute() != 0 {
		t.Fatalf("last slot of day starts at %v, want 17:00", last.Start)
	}
}

func TestGenerateCandidateSlots_SkipsWeekends(t *testing.T) {
	slots := generateCandidateSlots(mondayMidnight(), 30, nil, testSchedulerConfig())

	for _, s := range slots {
		wd := s.Start.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			t.Fatalf("generated weekend slot on %v", s.Start)
		}
	}
}

func TestGenerateCandidateSlots_PreferredWeekendDay(t *testing.T) {
	// Saturday = 6 in time.Weekday numbering
	slots := generateCandidateSlots(mondayMidnight(), 30, []int{6}, testSchedulerConfig())

	sawSaturday := false
	for _, s := range slots {
		if s.Start.Weekday() == time.Saturday {
			sawSaturday = true
		}
		if s.Start.Weekday() == time.Sunday {
			t.Fatalf("Sunday was not preferred but produced slot %v", s.Start)
		}
	}
	if !sawSaturday {
		t.Fatal("expected Saturday slots when Saturday is a preferred day")
	}
}

func TestGenerateCandidateSlots_SlotCountPerDay(t *testing.T) {
	// 08:00-18:00 with a 30m step and 30m duration yields 20 slots per day.
	cfg := testSchedulerConfig()
	cfg.HorizonDays = 1
	slots := generateCandidateSlots(mondayMidnight(), 30, nil, cfg)

	if len(slots) != 20 {
		t.Fatalf("got %d slots for one day, want 20", len(slots))
	}
}

func TestGenerateCandidateSlots_TooLongForWindow(t *testing.T) {
	cfg := testSchedulerConfig()
	cfg.HorizonDays = 1
	slots := generateCandidateSlots(mondayMidnight(), 11*60, nil, cfg)

	if len(slots) != 0 {
		t.Fatalf("got %d slots for a meeting longer than the business day, want 0", len(slots))
	}
}
