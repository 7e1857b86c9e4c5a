package model

// Strategy identifies which sampling strategy produced a candidate set.
type Strategy string

const (
	StrategyWeightedRandom Strategy = "weighted_random"
	StrategyHighLowMix     Strategy = "high_low_mix"
	StrategyPrimeBalanced  Strategy = "prime_balanced"
)

// Strategies lists all sampling strategies in dispatch order.
var Strategies = []Strategy{StrategyWeightedRandom, StrategyHighLowMix, StrategyPrimeBalanced}

// CandidateSet is a generated set of numbers plus the strategy that produced it.
// Immutable once produced; duplicates across strategies are allowed.
type CandidateSet struct {
	Numbers  []int    `json:"numbers"`
	Strategy Strategy `json:"strategy"`
}

// Matches returns the intersection size and the matched numbers against a draw.
func (c CandidateSet) Matches(d Draw) (int, []int) {
	var matched []int
	for _, n := range c.Numbers {
		if d.Contains(n) {
			matched = append(matched, n)
		}
	}
	return len(matched), matched
}
