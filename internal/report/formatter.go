package report

import (
	"fmt"
	"sort"
	"strings"

	"DrawSentinel/internal/model"
)

var comboNames = map[int]string{
	2: "Pairs",
	3: "Triplets",
	4: "Quadruplets",
	5: "Quintuplets",
	6: "Sixtuplets",
}

// FormatAnalysis renders the analysis report as a readable text block.
func FormatAnalysis(rep *model.AnalysisReport, pool int) string {
	var b strings.Builder

	b.WriteString("NUMBER FREQUENCY (appearances / draws since last seen):\n")
	for n := 1; n <= pool; n++ {
		b.WriteString(fmt.Sprintf("  %2d: %4d / %d\n", n, rep.Frequency[n], rep.Recency[n]))
	}

	b.WriteString("\nTEMPERATURE:\n")
	b.WriteString(fmt.Sprintf("  hot:  %s\n", joinNumbers(rep.Temperature.Hot, " ")))
	b.WriteString(fmt.Sprintf("  warm: %s\n", joinNumbers(rep.Temperature.Warm, " ")))
	b.WriteString(fmt.Sprintf("  cold: %s\n", joinNumbers(rep.Temperature.Cold, " ")))

	b.WriteString(fmt.Sprintf("\nCOLD NUMBERS (window): %s\n", joinNumbers(rep.ColdNumbers, " ")))
	b.WriteString(fmt.Sprintf("PRIMES IN POOL: %s\n", joinNumbers(rep.Primes, " ")))

	for _, cs := range rep.Combinations {
		name := comboNames[cs.Size]
		b.WriteString(fmt.Sprintf("\nTOP %s:\n", strings.ToUpper(name)))
		for _, cc := range cs.Top {
			b.WriteString(fmt.Sprintf("  %-20s x%d\n", joinNumbers(cc.Numbers, "-"), cc.Count))
		}
		b.WriteString(fmt.Sprintf("NUMBERS IN %s:\n", strings.ToUpper(name)))
		for _, p := range cs.Participation {
			b.WriteString(fmt.Sprintf("  %2d: %4d (%.1f%%)\n", p.Number, p.Count, p.Share*100))
		}
	}

	return b.String()
}

// FormatSets renders the generated candidate sets.
func FormatSets(sets []model.CandidateSet) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("GENERATED SETS (%d):\n", len(sets)))
	for _, s := range sets {
		b.WriteString(fmt.Sprintf("  %-20s [%s]\n", joinNumbers(s.Numbers, "-"), s.Strategy))
	}
	return b.String()
}

// FormatValidation renders the back-test result, including the distribution
// of best matches per draw.
func FormatValidation(res *model.ValidationResult) string {
	var b strings.Builder
	b.WriteString("VALIDATION RESULTS:\n")
	b.WriteString(fmt.Sprintf("Tested against %d historical draws\n", res.DrawsTested))
	b.WriteString("Match distribution:\n")

	buckets := make([]int, 0, len(res.MatchCounts))
	for matches := range res.MatchCounts {
		buckets = append(buckets, matches)
	}
	sort.Ints(buckets)
	for _, matches := range buckets {
		b.WriteString(fmt.Sprintf("  %d matches: %d (%.2f%%)\n",
			matches, res.MatchCounts[matches], res.MatchPercentages[matches]))
	}

	if len(res.BestPerDraw) > 0 {
		tally := make(map[int]int)
		for _, best := range res.BestPerDraw {
			tally[best]++
		}
		var keys []int
		for k := range tally {
			keys = append(keys, k)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(keys)))
		b.WriteString("Best match per draw:")
		for _, k := range keys {
			b.WriteString(fmt.Sprintf(" %dx best=%d", tally[k], k))
		}
		b.WriteString("\n")
	}

	if len(res.HighPerformers) > 0 {
		b.WriteString(fmt.Sprintf("High performers (threshold hits): %d\n", len(res.HighPerformers)))
	}
	return b.String()
}

// FormatLatest renders the point comparison against the latest draw.
func FormatLatest(cmp *model.LatestComparison) string {
	if cmp == nil {
		return "No latest draw available\n"
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("LATEST DRAW %s: %s\n",
		cmp.DrawDate.Format("01/02/06"), joinNumbers(cmp.DrawNumbers, "-")))
	for _, s := range cmp.Sets {
		b.WriteString(fmt.Sprintf("  %-20s [%s] matches=%d",
			joinNumbers(s.Numbers, "-"), s.Strategy, s.Matches))
		if s.Matches > 0 {
			b.WriteString(fmt.Sprintf(" (%s)", joinNumbers(s.MatchedNumbers, "-")))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func joinNumbers(nums []int, sep string) string {
	if len(nums) == 0 {
		return "-"
	}
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, sep)
}
