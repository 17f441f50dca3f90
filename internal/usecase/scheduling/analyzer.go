package scheduling

import (
	"fmt"
	"sort"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
)

// minViableScore is the hard floor on recommendation quality: slots scoring
// at or below it are discarded before ranking.
const minViableScore = 20

// minWorkableSlots is the number of workable slots below which a participant
// receives alternative suggestions.
const minWorkableSlots = 3

// rankSlots drops non-viable slots and sorts the remainder descending by
// score. The sort is stable so ties retain generation order and results are
// reproducible.
func rankSlots(scored []ScoredSlot) []ScoredSlot {
	viable := make([]ScoredSlot, 0, len(scored))
	for _, s := range scored {
		if s.Score > minViableScore {
			viable = append(viable, s)
		}
	}
	sort.SliceStable(viable, func(i, j int) bool {
		return viable[i].Score > viable[j].Score
	})
	return viable
}

// analyze classifies scheduling difficulty and produces free-text
// recommendations. The viable list may be empty; no arithmetic is performed
// over an empty set.
func analyze(viable []ScoredSlot, totalEvaluated, participantCount int) SchedulingAnalysis {
	if len(viable) == 0 {
		return SchedulingAnalysis{
			TotalSlotsEvaluated: totalEvaluated,
			Difficulty:          DifficultyVeryDifficult,
			Recommendations: []string{
				"No viable time slots were found; relax participant constraints or widen the scheduling horizon",
			},
		}
	}

	best := viable[0].Score
	sum := 0
	for _, s := range viable {
		sum += s.Score
	}

	analysis := SchedulingAnalysis{
		TotalSlotsEvaluated: totalEvaluated,
		BestScore:           best,
		AverageScore:        float64(sum) / float64(len(viable)),
		Difficulty:          classifyDifficulty(best),
	}

	if best < 50 {
		analysis.Recommendations = append(analysis.Recommendations,
			"Consider reducing the number of required participants",
			"Consider looking at next week for better availability",
		)
	}
	if participantCount > 5 {
		analysis.Recommendations = append(analysis.Recommendations,
			"Consider breaking the meeting into smaller groups",
		)
	}

	return analysis
}

func classifyDifficulty(best int) Difficulty {
	switch {
	case best < 30:
		return DifficultyVeryDifficult
	case best < 50:
		return DifficultyDifficult
	case best < 70:
		return DifficultyModerate
	default:
		return DifficultyEasy
	}
}

// participantFeedback computes, per participant, the fraction of all scored
// slots (not just the suggested ones) in which the participant is not in
// conflict. ConstraintsMet is a constant placeholder until per-slot
// constraint verification lands at this stage.
func participantFeedback(participants []*entities.Participant, scored []ScoredSlot) map[string]ParticipantFeedback {
	feedback := make(map[string]ParticipantFeedback, len(participants))
	total := len(scored)

	for _, p := range participants {
		conflicted := 0
		for _, s := range scored {
			for _, email := range s.Conflicts {
				if email == p.Email {
					conflicted++
					break
				}
			}
		}

		rate := 0.0
		if total > 0 {
			rate = float64(total-conflicted) / float64(total)
		}

		entry := ParticipantFeedback{
			AvailabilityRate: rate,
			ConstraintsMet:   true,
		}
		if rate*float64(total) < minWorkableSlots {
			entry.AlternativeSuggestions = []string{
				fmt.Sprintf("Ask %s to share additional availability", p.Email),
				"Consider an asynchronous update for participants with limited availability",
			}
		}
		feedback[p.Email] = entry
	}

	return feedback
}
