package analyzer

import (
	"sort"

	"DrawSentinel/internal/model"
)

// Combinations counts co-occurrence of every sorted sub-combination of each
// enabled size within each draw, plus per-number participation counts.
// Only combinations meeting the minimum occurrence count are kept; results
// are ranked descending by count and truncated to the configured top range.
func (a *Analyzer) Combinations() []model.CombinationStats {
	sizes := a.cfg.EnabledComboSizes()
	if len(sizes) == 0 {
		return nil
	}

	type sizeCounts struct {
		combos        map[string]model.ComboCount
		participation map[int]int
	}
	counts := make(map[int]*sizeCounts, len(sizes))
	for _, size := range sizes {
		counts[size] = &sizeCounts{
			combos:        make(map[string]model.ComboCount),
			participation: make(map[int]int),
		}
	}

	for _, d := range a.draws {
		nums := sortedCopy(d.Numbers)
		for _, size := range sizes {
			if size > len(nums) {
				continue
			}
			sc := counts[size]
			forEachCombination(nums, size, func(combo []int) {
				key := comboKey(combo)
				cc, ok := sc.combos[key]
				if !ok {
					cc = model.ComboCount{Numbers: append([]int(nil), combo...)}
				}
				cc.Count++
				sc.combos[key] = cc
				for _, n := range combo {
					sc.participation[n]++
				}
			})
		}
	}

	minCount := a.cfg.Analysis.MinCombinationCount
	topN := a.cfg.Analysis.TopRange
	// Denominator for participation share: total slots a number can occupy
	// across the combinations it joins within one draw.
	totalPossible := len(a.draws) * (a.pick - 1)

	var results []model.CombinationStats
	for _, size := range sizes {
		sc := counts[size]

		var top []model.ComboCount
		for _, cc := range sc.combos {
			if cc.Count >= minCount {
				top = append(top, cc)
			}
		}
		sort.Slice(top, func(i, j int) bool {
			if top[i].Count != top[j].Count {
				return top[i].Count > top[j].Count
			}
			return lessNumbers(top[i].Numbers, top[j].Numbers)
		})
		if len(top) > topN {
			top = top[:topN]
		}

		var participation []model.Participation
		for n, cnt := range sc.participation {
			share := 0.0
			if totalPossible > 0 {
				share = float64(cnt) / float64(totalPossible)
			}
			participation = append(participation, model.Participation{Number: n, Count: cnt, Share: share})
		}
		sort.Slice(participation, func(i, j int) bool {
			if participation[i].Count != participation[j].Count {
				return participation[i].Count > participation[j].Count
			}
			return participation[i].Number < participation[j].Number
		})
		if len(participation) > topN {
			participation = participation[:topN]
		}

		results = append(results, model.CombinationStats{
			Size:          size,
			Top:           top,
			Participation: participation,
		})
	}
	return results
}

// forEachCombination visits every size-length combination of nums in
// lexicographic order. nums must already be sorted.
func forEachCombination(nums []int, size int, visit func([]int)) {
	n := len(nums)
	if size <= 0 || size > n {
		return
	}
	idx := make([]int, size)
	for i := range idx {
		idx[i] = i
	}
	combo := make([]int, size)
	for {
		for i, j := range idx {
			combo[i] = nums[j]
		}
		visit(combo)

		// Advance to the next index combination.
		i := size - 1
		for i >= 0 && idx[i] == n-size+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < size; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

func comboKey(combo []int) string {
	// Small fixed alphabet, so a byte key is cheaper than fmt.
	key := make([]byte, 0, len(combo)*3)
	for i, n := range combo {
		if i > 0 {
			key = append(key, '-')
		}
		key = appendInt(key, n)
	}
	return string(key)
}

func appendInt(b []byte, n int) []byte {
	if n >= 10 {
		b = appendInt(b, n/10)
	}
	return append(b, byte('0'+n%10))
}

func lessNumbers(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
