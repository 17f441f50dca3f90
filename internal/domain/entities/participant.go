package entities

import "time"

// ParticipantRole tags a participant's role in the meeting. The role is
// informational only; it does not affect slot scoring.
type ParticipantRole string

const (
	ParticipantRoleOrganizer ParticipantRole = "organizer"
	ParticipantRoleRequired  ParticipantRole = "required"
	ParticipantRoleOptional  ParticipantRole = "optional"
	ParticipantRolePresenter ParticipantRole = "presenter"
	ParticipantRoleObserver  ParticipantRole = "observer"
)

// Participant is a resolved meeting participant. Participants are derived
// fresh on every scheduling call and are not persisted as a first-class
// entity.
type Participant struct {
	Email        string                 `json:"email"`
	Name         string                 `json:"name,omitempty"`
	Role         ParticipantRole        `json:"role"`
	Timezone     string                 `json:"timezone"`
	Availability []AvailabilitySlot     `json:"availability"`
	Constraints  ParticipantConstraints `json:"constraints"`
}

// ParticipantConstraints holds explicit per-participant scheduling bounds.
// Only the NoMeetingsBefore/NoMeetingsAfter bounds are enforced when scoring;
// PreferredMeetingLength and BreakBetweenMeetings are carried for future
// policy but not consulted.
type ParticipantConstraints struct {
	NoMeetingsBefore       string `json:"no_meetings_before,omitempty"` // "HH:MM"
	NoMeetingsAfter        string `json:"no_meetings_after,omitempty"`  // "HH:MM"
	PreferredMeetingLength int    `json:"preferred_meeting_length,omitempty"`
	BreakBetweenMeetings   int    `json:"break_between_meetings,omitempty"`
}

// StatusAt classifies the interval [start, end) against the participant's
// recorded availability. The first overlapping interval determines the
// status; ok is false when no interval overlaps, in which case nothing is
// assumed about the participant.
func (p *Participant) StatusAt(start, end time.Time) (AvailabilityStatus, bool) {
	for _, a := range p.Availability {
		if a.Overlaps(start, end) {
			return a.Status, true
		}
	}
	return "", false
}
