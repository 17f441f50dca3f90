package scheduling

import (
	"testing"
	"time"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
)

func scoredAt(hour, score int) ScoredSlot {
	start := time.Date(2025, 6, 2, hour, 0, 0, 0, time.UTC)
	return ScoredSlot{Start: start, End: start.Add(30 * time.Minute), Score: score}
}

func TestRankSlots_DropsNonViableAndSortsDescending(t *testing.T) {
	scored := []ScoredSlot{
		scoredAt(8, 40),
		scoredAt(9, 95),
		scoredAt(10, 20), // at the floor, not above it
		scoredAt(11, 60),
		scoredAt(12, 0),
	}

	ranked := rankSlots(scored)

	if len(ranked) != 3 {
		t.Fatalf("got %d viable slots, want 3", len(ranked))
	}
	if ranked[0].Score != 95 || ranked[1].Score != 60 || ranked[2].Score != 40 {
		t.Fatalf("ranked scores = %d, %d, %d; want 95, 60, 40",
			ranked[0].Score, ranked[1].Score, ranked[2].Score)
	}
}

func TestRankSlots_StableOnTies(t *testing.T) {
	scored := []ScoredSlot{
		scoredAt(9, 80),
		scoredAt(10, 80),
		scoredAt(11, 80),
	}

	ranked := rankSlots(scored)

	for i := range ranked {
		if !ranked[i].Start.Equal(scored[i].Start) {
			t.Fatalf("tie order changed at %d: got %v, want %v", i, ranked[i].Start, scored[i].Start)
		}
	}
}

func TestAnalyze_EmptyViableSet(t *testing.T) {
	analysis := analyze(nil, 50, 3)

	if analysis.Difficulty != DifficultyVeryDifficult {
		t.Fatalf("difficulty = %s, want very_difficult", analysis.Difficulty)
	}
	if analysis.TotalSlotsEvaluated != 50 {
		t.Fatalf("total evaluated = %d, want 50", analysis.TotalSlotsEvaluated)
	}
	if analysis.BestScore != 0 || analysis.AverageScore != 0 {
		t.Fatalf("empty set should not report scores: %+v", analysis)
	}
	if len(analysis.Recommendations) == 0 {
		t.Fatal("expected a recommendation for the empty set")
	}
}

func TestAnalyze_Aggregates(t *testing.T) {
	viable := []ScoredSlot{scoredAt(9, 90), scoredAt(10, 70), scoredAt(11, 80)}

	analysis := analyze(viable, 100, 3)

	if analysis.BestScore != 90 {
		t.Fatalf("best = %d, want 90", analysis.BestScore)
	}
	if analysis.AverageScore != 80 {
		t.Fatalf("average = %v, want 80", analysis.AverageScore)
	}
	if analysis.Difficulty != DifficultyEasy {
		t.Fatalf("difficulty = %s, want easy", analysis.Difficulty)
	}
	if len(analysis.Recommendations) != 0 {
		t.Fatalf("unexpected recommendations: %v", analysis.Recommendations)
	}
}

func TestAnalyze_LowScoreRecommendations(t *testing.T) {
	viable := []ScoredSlot{scoredAt(9, 45)}

	analysis := analyze(viable, 100, 3)

	if analysis.Difficulty != DifficultyDifficult {
		t.Fatalf("difficulty = %s, want difficult", analysis.Difficulty)
	}
	if len(analysis.Recommendations) != 2 {
		t.Fatalf("got %d recommendations, want 2: %v", len(analysis.Recommendations), analysis.Recommendations)
	}
}

func TestAnalyze_LargeMeetingRecommendation(t *testing.T) {
	viable := []ScoredSlot{scoredAt(9, 90)}

	analysis := analyze(viable, 100, 10)

	found := false
	for _, r := range analysis.Recommendations {
		if r == "Consider breaking the meeting into smaller groups" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected smaller-groups recommendation for 10 participants: %v", analysis.Recommendations)
	}
}

func TestClassifyDifficulty(t *testing.T) {
	cases := []struct {
		best int
		want Difficulty
	}{
		{10, DifficultyVeryDifficult},
		{29, DifficultyVeryDifficult},
		{30, DifficultyDifficult},
		{49, DifficultyDifficult},
		{50, DifficultyModerate},
		{69, DifficultyModerate},
		{70, DifficultyEasy},
		{100, DifficultyEasy},
	}
	for _, tc := range cases {
		if got := classifyDifficulty(tc.best); got != tc.want {
			t.Fatalf("classifyDifficulty(%d) = %s, want %s", tc.best, got, tc.want)
		}
	}
}

func TestParticipantFeedback_Rates(t *testing.T) {
	participants := []*entities.Participant{
		{Email: "alice@example.com"},
		{Email: "bob@example.com"},
	}

	scored := []ScoredSlot{
		{Conflicts: []string{"bob@example.com"}},
		{Conflicts: nil},
		{Conflicts: []string{"bob@example.com"}},
		{Conflicts: nil},
	}

	feedback := participantFeedback(participants, scored)

	alice := feedback["alice@example.com"]
	if alice.AvailabilityRate != 1.0 {
		t.Fatalf("alice rate = %v, want 1.0", alice.AvailabilityRate)
	}
	if !alice.ConstraintsMet {
		t.Fatal("alice constraints_met should be true")
	}

	bob := feedback["bob@example.com"]
	if bob.AvailabilityRate != 0.5 {
		t.Fatalf("bob rate = %v, want 0.5", bob.AvailabilityRate)
	}
	// 0.5 * 4 = 2 workable slots, below the floor of 3
	if len(bob.AlternativeSuggestions) == 0 {
		t.Fatal("bob should get alternative suggestions")
	}
}

func TestParticipantFeedback_NoScoredSlots(t *testing.T) {
	participants := []*entities.Participant{{Email: "alice@example.com"}}

	feedback := participantFeedback(participants, nil)

	alice := feedback["alice@example.com"]
	if alice.AvailabilityRate != 0 {
		t.Fatalf("rate = %v, want 0 when nothing was scored", alice.AvailabilityRate)
	}
	if len(alice.AlternativeSuggestions) == 0 {
		t.Fatal("expected alternative suggestions when no slots were scored")
	}
}
