package scheduling

import (
	"math"
	"strings"
	"time"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
)

// fallbackReasoning is returned when no heuristic or violation note was
// recorded for a slot.
const fallbackReasoning = "Good availability for all participants"

// scoreSlot evaluates one candidate window against the request and every
// resolved participant. It is a pure function of its inputs: identical inputs
// always produce an identical score, confidence, and reasoning.
func scoreSlot(slot candidateSlot, input *ScheduleMeetingInput, participants []*entities.Participant) ScoredSlot {
	score := 100.0
	var reasons, factors, conflicts []string
	var summary AvailabilitySummary

	allHaveData := true
	for _, p := range participants {
		if len(p.Availability) == 0 {
			allHaveData = false
		}

		if status, ok := p.StatusAt(slot.Start, slot.End); ok {
			switch status {
			case entities.AvailabilityStatusFree:
				score += 5
				summary.Free++
			case entities.AvailabilityStatusBusy:
				score -= 30
				summary.Busy++
				conflicts = append(conflicts, p.Email)
			case entities.AvailabilityStatusTentative:
				score -= 10
				summary.Tentative++
			case entities.AvailabilityStatusOutOfOffice:
				score -= 50
				conflicts = append(conflicts, p.Email)
			}
		}

		delta, violations := evaluateConstraints(p, slot.Start)
		score += delta
		reasons = append(reasons, violations...)
	}

	hour := slot.Start.Hour()

	// Time-of-day heuristics
	if hour >= 9 && hour <= 11 {
		score += 10
		factors = append(factors, "Morning slot")
	}
	if hour >= 14 && hour <= 16 {
		score += 5
		factors = append(factors, "Afternoon slot")
	}
	if hour < 9 || hour > 17 {
		score -= 15
		reasons = append(reasons, "Outside typical business hours")
	}

	// Day-of-week heuristics
	switch wd := slot.Start.Weekday(); {
	case wd >= time.Monday && wd <= time.Thursday:
		score += 5
		factors = append(factors, "Weekday")
	case wd == time.Friday:
		score -= 5
		reasons = append(reasons, "Friday meetings tend to see lower engagement")
	}

	// Meeting-type heuristics
	switch input.MeetingType {
	case entities.MeetingTypeStandup:
		if hour == 9 {
			score += 15
			factors = append(factors, "Optimal standup time")
		}
	case entities.MeetingTypePresentation:
		if hour >= 10 && hour <= 15 {
			score += 10
			factors = append(factors, "Good presentation window")
		}
	case entities.MeetingTypeInterview:
		if hour >= 10 && hour <= 16 {
			score += 8
			factors = append(factors, "Good interview window")
		}
	}

	// Urgent requests may still need a conflicted slot to surface
	if input.Priority == entities.MeetingPriorityUrgent && len(conflicts) > 0 {
		score += 20
		factors = append(factors, "Urgent priority override")
	}

	confidence := 0.8
	if allHaveData && len(participants) > 0 {
		confidence += 0.1
	}
	if len(conflicts) == 0 {
		confidence += 0.1
	}
	if confidence > 1.0 {
		confidence = 1.0
	}

	reasoning := fallbackReasoning
	if len(reasons) > 0 {
		reasoning = strings.Join(reasons, "; ")
	}

	return ScoredSlot{
		Start:          slot.Start,
		End:            slot.End,
		Score:          clampScore(score),
		Confidence:     confidence,
		Reasoning:      reasoning,
		Conflicts:      conflicts,
		Summary:        summary,
		OptimalFactors: factors,
	}
}

// clampScore rounds and bounds a raw score to [0, 100].
func clampScore(score float64) int {
	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}
