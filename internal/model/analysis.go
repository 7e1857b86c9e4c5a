package model

// TemperatureBuckets partitions the pool by recency. Numbers falling between
// the warm and cold bin thresholds belong to none of the three lists.
type TemperatureBuckets struct {
	Hot  []int `json:"hot"`
	Warm []int `json:"warm"`
	Cold []int `json:"cold"`
}

// ComboCount is the occurrence count of one sorted number combination.
type ComboCount struct {
	Numbers []int `json:"numbers"`
	Count   int   `json:"count"`
}

// Participation counts how often a number appears inside combinations of a
// given size, with its share of the total possible participations.
type Participation struct {
	Number int     `json:"number"`
	Count  int     `json:"count"`
	Share  float64 `json:"share"`
}

// CombinationStats holds the ranked combination results for one size.
type CombinationStats struct {
	Size          int             `json:"size"`
	Top           []ComboCount    `json:"top"`
	Participation []Participation `json:"participation"`
}

// AnalysisReport is the consolidated output of all analyses over one table.
type AnalysisReport struct {
	Frequency    map[int]int        `json:"frequency"`
	Recency      map[int]int        `json:"recency"`
	Temperature  TemperatureBuckets `json:"temperature"`
	Combinations []CombinationStats `json:"combinations,omitempty"`
	ColdNumbers  []int              `json:"cold_numbers"`
	Primes       []int              `json:"primes"`
}
