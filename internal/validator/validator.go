package validator

import (
	"errors"
	"fmt"

	"DrawSentinel/internal/config"
	"DrawSentinel/internal/model"
)

// ErrInsufficientHistory indicates the table cannot form a non-empty test
// window after holding out the latest draw.
var ErrInsufficientHistory = errors.New("need at least 2 historical draws for back-testing")

// Validator back-tests candidate sets against a trailing window of
// historical draws.
type Validator struct {
	draws []model.Draw
	cfg   *config.Config
}

// New creates a Validator over the historical table.
func New(draws []model.Draw, cfg *config.Config) (*Validator, error) {
	if len(draws) < 2 {
		return nil, fmt.Errorf("%w: have %d", ErrInsufficientHistory, len(draws))
	}
	return &Validator{draws: draws, cfg: cfg}, nil
}

// Backtest compares every candidate set against the trailing test window,
// excluding the single most recent draw as a holdout boundary. The window
// size is min(configured test_draws, available draws - 1). Counts accumulate
// per match bucket across the full (draws x sets) cross-product; sets whose
// match count reaches the alert threshold are recorded as high performers,
// possibly repeatedly across draws.
func (v *Validator) Backtest(sets []model.CandidateSet) *model.ValidationResult {
	testDraws := v.cfg.Validation.TestDraws
	if limit := len(v.draws) - 1; testDraws > limit {
		testDraws = limit
	}
	window := v.draws[len(v.draws)-testDraws-1 : len(v.draws)-1]

	result := model.NewValidationResult(v.cfg.Strategy.NumbersToSelect)
	result.DrawsTested = len(window)

	threshold := v.cfg.Validation.AlertThreshold
	for _, draw := range window {
		best := 0
		for _, set := range sets {
			matches, _ := set.Matches(draw)
			result.MatchCounts[matches]++
			if matches > best {
				best = matches
			}
			if matches >= threshold {
				result.HighPerformers = append(result.HighPerformers, set)
			}
		}
		result.BestPerDraw = append(result.BestPerDraw, best)
	}

	result.CalculatePercentages(len(sets))
	return result
}

// CompareLatest compares every candidate set against a single designated
// draw, returning per-set match counts and matched numbers. It does not
// touch the bucketed back-test statistics and needs no historical window.
// Returns nil when no latest draw is available.
func CompareLatest(latest *model.Draw, sets []model.CandidateSet) *model.LatestComparison {
	if latest == nil {
		return nil
	}

	cmp := &model.LatestComparison{
		DrawDate:    latest.Date,
		DrawNumbers: latest.Numbers,
	}
	for _, set := range sets {
		matches, matched := set.Matches(*latest)
		cmp.Sets = append(cmp.Sets, model.SetComparison{
			Numbers:        set.Numbers,
			Strategy:       set.Strategy,
			Matches:        matches,
			MatchedNumbers: matched,
		})
	}
	return cmp
}
