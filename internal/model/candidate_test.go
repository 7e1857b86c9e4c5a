package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDrawContains(t *testing.T) {
	d := Draw{Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), Numbers: []int{4, 8, 15}}

	assert.True(t, d.Contains(4))
	assert.True(t, d.Contains(15))
	assert.False(t, d.Contains(16))
	assert.False(t, Draw{}.Contains(1))
}

func TestCandidateSetMatches(t *testing.T) {
	d := Draw{Numbers: []int{2, 4, 6, 8}}

	tests := []struct {
		name        string
		set         []int
		wantCount   int
		wantMatched []int
	}{
		{"full_overlap", []int{2, 4, 6, 8}, 4, []int{2, 4, 6, 8}},
		{"partial", []int{1, 4, 8, 9}, 2, []int{4, 8}},
		{"disjoint", []int{1, 3, 5, 7}, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CandidateSet{Numbers: tt.set, Strategy: StrategyWeightedRandom}
			count, matched := c.Matches(d)
			assert.Equal(t, tt.wantCount, count)
			assert.Equal(t, tt.wantMatched, matched)
		})
	}
}
