package scheduling

import (
	"time"

	"github.com/johnquangdev/meeting-scheduler/pkg/config"
)

// candidateSlot is a raw generated window before scoring.
type candidateSlot struct {
	Start time.Time
	End   time.Time
}

// generateCandidateSlots enumerates fixed-length windows on a step grid
// across the horizon, inside business hours. Weekend days are skipped unless
// their weekday number appears in preferredDays. A window whose end would
// pass the business-hours close is discarded, so generated slots never run
// past the close boundary.
func generateCandidateSlots(now time.Time, durationMinutes int, preferredDays []int, cfg config.SchedulerConfig) []candidateSlot {
	preferred := make(map[time.Weekday]bool, len(preferredDays))
	for _, d := range preferredDays {
		preferred[time.Weekday(d)] = true
	}

	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(cfg.SlotStepMinutes) * time.Minute

	var slots []candidateSlot
	for day := 0; day < cfg.HorizonDays; day++ {
		date := now.AddDate(0, 0, day)
		wd := date.Weekday()
		if (wd == time.Saturday || wd == time.Sunday) && !preferred[wd] {
			continue
		}

		open := time.Date(date.Year(), date.Month(), date.Day(), cfg.BusinessHoursOpen, 0, 0, 0, date.Location())
		closeAt := time.Date(date.Year(), date.Month(), date.Day(), cfg.BusinessHoursClose, 0, 0, 0, date.Location())

		for start := open; start.Before(closeAt); start = start.Add(step) {
			end := start.Add(duration)
			if end.After(closeAt) {
				continue
			}
			slots = append(slots, candidateSlot{Start: start, End: end})
		}
	}
	return slots
}
