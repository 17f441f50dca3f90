package scheduling

import (
	"fmt"
	"strconv"
	"strings"

	"time"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
)

// evaluateConstraints checks a participant's explicit time-of-day bounds
// against a slot start. It returns a non-positive score delta and a violation
// message per breached bound. Only the before/after bounds are enforced;
// preferred meeting length and break-between-meetings are carried on the
// participant but not evaluated here.
func evaluateConstraints(p *entities.Participant, start time.Time) (float64, []string) {
	delta := 0.0
	var violations []string

	startClock := float64(start.Hour()) + float64(start.Minute())/60

	if bound := p.Constraints.NoMeetingsBefore; bound != "" {
		if limit, err := parseClock(bound); err == nil && startClock < limit {
			delta -= 20
			violations = append(violations, fmt.Sprintf("%s prefers no meetings before %s", participantLabel(p), bound))
		}
	}

	if bound := p.Constraints.NoMeetingsAfter; bound != "" {
		if limit, err := parseClock(bound); err == nil && startClock > limit {
			delta -= 20
			violations = append(violations, fmt.Sprintf("%s prefers no meetings after %s", participantLabel(p), bound))
		}
	}

	return delta, violations
}

// parseClock converts an "HH:MM" string to an hour-plus-fraction value.
func parseClock(s string) (float64, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return float64(hour) + float64(minute)/60, nil
}

func participantLabel(p *entities.Participant) string {
	if p.Name != "" {
		return p.Name
	}
	return p.Email
}
