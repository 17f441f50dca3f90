package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
	"github.com/johnquangdev/meeting-scheduler/pkg/config"
)

// Outcome distinguishes a normal recommendation from the case where every
// candidate slot fell below the viability floor.
type Outcome string

const (
	OutcomeOK            Outcome = "ok"
	OutcomeNoViableSlots Outcome = "no_viable_slots"
)

// Difficulty is a coarse classification of how hard scheduling was, derived
// from the best score achieved.
type Difficulty string

const (
	DifficultyEasy          Difficulty = "easy"
	DifficultyModerate      Difficulty = "moderate"
	DifficultyDifficult     Difficulty = "difficult"
	DifficultyVeryDifficult Difficulty = "very_difficult"
)

// AvailabilitySummary counts participant statuses for one candidate slot.
type AvailabilitySummary struct {
	Free      int `json:"free"`
	Busy      int `json:"busy"`
	Tentative int `json:"tentative"`
}

// ScoredSlot is a scored candidate meeting window [Start, End).
type ScoredSlot struct {
	ID             uuid.UUID           `json:"id,omitempty"`
	Start          time.Time           `json:"start"`
	End            time.Time           `json:"end"`
	Score          int                 `json:"score"`
	Confidence     float64             `json:"confidence"`
	Reasoning      string              `json:"reasoning"`
	Conflicts      []string            `json:"conflicts"`
	Summary        AvailabilitySummary `json:"availability_summary"`
	OptimalFactors []string            `json:"optimal_factors"`
}

// SchedulingAnalysis aggregates how the candidate evaluation went.
type SchedulingAnalysis struct {
	TotalSlotsEvaluated int        `json:"total_slots_evaluated"`
	BestScore           int        `json:"best_score"`
	AverageScore        float64    `json:"average_score"`
	Difficulty          Difficulty `json:"difficulty"`
	Recommendations     []string   `json:"recommendations"`
}

// ParticipantFeedback summarizes one participant's fit over all evaluated
// slots.
type ParticipantFeedback struct {
	AvailabilityRate       float64  `json:"availability_rate"`
	ConstraintsMet         bool     `json:"constraints_met"`
	AlternativeSuggestions []string `json:"alternative_suggestions,omitempty"`
}

// SchedulingResult is the engine output: the suggested slots, the aggregate
// analysis, and per-participant feedback keyed by email.
type SchedulingResult struct {
	MeetingRequestID    uuid.UUID                      `json:"meeting_request_id"`
	Outcome             Outcome                        `json:"outcome"`
	SuggestedSlots      []ScoredSlot                   `json:"suggested_slots"`
	Analysis            SchedulingAnalysis             `json:"analysis"`
	ParticipantFeedback map[string]ParticipantFeedback `json:"participant_feedback"`
}

// DefaultAvailabilityPolicy describes what is assumed about participants with
// no calendar data: external contacts get synthesized weekday availability in
// this window, and the same bounds serve as fallback constraints for
// registered users without a learned pattern.
type DefaultAvailabilityPolicy struct {
	WorkdayStart  string // "HH:MM"
	WorkdayEnd    string // "HH:MM"
	BufferMinutes int
}

// PolicyFromConfig derives the default availability policy from the scheduler
// configuration.
func PolicyFromConfig(cfg config.SchedulerConfig) DefaultAvailabilityPolicy {
	return DefaultAvailabilityPolicy{
		WorkdayStart:  cfg.DefaultWorkStart,
		WorkdayEnd:    cfg.DefaultWorkEnd,
		BufferMinutes: cfg.DefaultBufferMinutes,
	}
}

// AvailabilityProvider supplies calendar busy/free intervals for a registered
// user. The default implementation is not wired to any live calendar and
// returns no intervals; see infrastructure/external/calendar.
type AvailabilityProvider interface {
	FetchAvailability(ctx context.Context, user *entities.User, from, to time.Time) ([]entities.AvailabilitySlot, error)
}
