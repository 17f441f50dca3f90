package entities

import "time"

// AvailabilityStatus classifies a calendar interval for a participant.
type AvailabilityStatus string

const (
	AvailabilityStatusFree        AvailabilityStatus = "free"
	AvailabilityStatusBusy        AvailabilityStatus = "busy"
	AvailabilityStatusTentative   AvailabilityStatus = "tentative"
	AvailabilityStatusOutOfOffice AvailabilityStatus = "out_of_office"
)

// AvailabilitySlot is a half-open time interval [Start, End) with an
// availability status.
type AvailabilitySlot struct {
	Start  time.Time          `json:"start"`
	End    time.Time          `json:"end"`
	Status AvailabilityStatus `json:"status"`
}

// Overlaps reports whether two intervals share interior points. Touching
// endpoints (a.End == b.Start) do not count as an overlap.
func (s AvailabilitySlot) Overlaps(start, end time.Time) bool {
	return s.Start.Before(end) && start.Before(s.End)
}
