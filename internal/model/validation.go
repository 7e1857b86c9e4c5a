package model

import "time"

// ValidationResult aggregates the back-test of candidate sets against a
// trailing window of historical draws.
type ValidationResult struct {
	DrawsTested      int             `json:"draws_tested"`
	MatchCounts      map[int]int     `json:"match_counts"`
	MatchPercentages map[int]float64 `json:"match_percentages"`
	BestPerDraw      []int           `json:"best_per_draw"`
	HighPerformers   []CandidateSet  `json:"high_performance_sets"`
}

// NewValidationResult initializes a result with zeroed match buckets 0..pick.
func NewValidationResult(pick int) *ValidationResult {
	counts := make(map[int]int, pick+1)
	for i := 0; i <= pick; i++ {
		counts[i] = 0
	}
	return &ValidationResult{
		MatchCounts:      counts,
		MatchPercentages: make(map[int]float64, pick+1),
	}
}

// CalculatePercentages converts raw bucket counts into percentages of the
// full (tested draws x candidate sets) cross-product. A zero cross-product
// leaves the percentages empty.
func (r *ValidationResult) CalculatePercentages(numSets int) {
	total := numSets * r.DrawsTested
	if total <= 0 {
		return
	}
	for matches, count := range r.MatchCounts {
		r.MatchPercentages[matches] = float64(count) / float64(total) * 100
	}
}

// SetComparison is one candidate set's result against a single draw.
type SetComparison struct {
	Numbers        []int    `json:"numbers"`
	Strategy       Strategy `json:"strategy"`
	Matches        int      `json:"matches"`
	MatchedNumbers []int    `json:"matched_numbers"`
}

// LatestComparison compares all candidate sets against the latest draw,
// independently of the bucketed back-test statistics.
type LatestComparison struct {
	DrawDate    time.Time       `json:"draw_date"`
	DrawNumbers []int           `json:"draw_numbers"`
	Sets        []SetComparison `json:"sets"`
}
