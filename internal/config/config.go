package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Data struct {
		HistoricalPath string `yaml:"historical_path"`
		UpcomingPath   string `yaml:"upcoming_path"`
		LatestPath     string `yaml:"latest_path"`
		ResultsDir     string `yaml:"results_dir"`
		StatsDir       string `yaml:"stats_dir"`
		MergeUpcoming  bool   `yaml:"merge_upcoming"`
	} `yaml:"data"`
	Strategy struct {
		NumberPool      int     `yaml:"number_pool"`
		NumbersToSelect int     `yaml:"numbers_to_select"`
		FrequencyWeight float64 `yaml:"frequency_weight"`
		RecentWeight    float64 `yaml:"recent_weight"`
		RandomWeight    float64 `yaml:"random_weight"`
		LowNumberMax    int     `yaml:"low_number_max"`
		ColdThreshold   int     `yaml:"cold_threshold"`
	} `yaml:"strategy"`
	Analysis struct {
		RecencyBins struct {
			Hot  int `yaml:"hot"`
			Warm int `yaml:"warm"`
			Cold int `yaml:"cold"`
		} `yaml:"recency_bins"`
		Combinations struct {
			Pairs       bool `yaml:"pairs"`
			Triplets    bool `yaml:"triplets"`
			Quadruplets bool `yaml:"quadruplets"`
			Quintuplets bool `yaml:"quintuplets"`
			Sixtuplets  bool `yaml:"sixtuplets"`
		} `yaml:"combination_analysis"`
		MinCombinationCount int `yaml:"min_combination_count"`
		TopRange            int `yaml:"top_range"`
	} `yaml:"analysis"`
	Validation struct {
		Mode           string `yaml:"mode"`
		TestDraws      int    `yaml:"test_draws"`
		AlertThreshold int    `yaml:"alert_threshold"`
		SaveReport     bool   `yaml:"save_report"`
	} `yaml:"validation"`
	Output struct {
		SetsToGenerate int  `yaml:"sets_to_generate"`
		SaveAnalysis   bool `yaml:"save_analysis"`
		Verbose        bool `yaml:"verbose"`
	} `yaml:"output"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		DrawCron string `yaml:"draw_cron"`
	} `yaml:"schedule"`
	// Seed fixes the random source for reproducible runs; 0 means time-seeded.
	Seed uint64 `yaml:"seed"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. Defaults are seeded before parsing, so a file only needs the
// keys it changes; an explicit value in the file always wins, false included.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("HISTORICAL_PATH"); v != "" {
		cfg.Data.HistoricalPath = v
	}
	if v := os.Getenv("LATEST_PATH"); v != "" {
		cfg.Data.LatestPath = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CRON_DRAW"); v != "" {
		cfg.Schedule.DrawCron = v
	}
	if v := os.Getenv("VALIDATION_MODE"); v != "" {
		cfg.Validation.Mode = v
	}
	if v := os.Getenv("SETS_TO_GENERATE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Output.SetsToGenerate = n
		}
	}
	if v := os.Getenv("SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = n
		}
	}

	return cfg, nil
}

// defaultConfig returns a Config populated with every default value.
func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Data.HistoricalPath = "data/historical.csv"
	cfg.Data.LatestPath = "data/latest_draw.csv"
	cfg.Data.ResultsDir = "results"
	cfg.Data.StatsDir = "stats"
	cfg.Data.MergeUpcoming = true
	cfg.Strategy.NumberPool = 55
	cfg.Strategy.NumbersToSelect = 6
	cfg.Strategy.FrequencyWeight = 0.4
	cfg.Strategy.RecentWeight = 0.2
	cfg.Strategy.RandomWeight = 0.4
	cfg.Strategy.LowNumberMax = 10
	cfg.Strategy.ColdThreshold = 50
	cfg.Analysis.RecencyBins.Hot = 3
	cfg.Analysis.RecencyBins.Warm = 10
	cfg.Analysis.RecencyBins.Cold = 30
	cfg.Analysis.Combinations.Pairs = true
	cfg.Analysis.Combinations.Triplets = true
	cfg.Analysis.MinCombinationCount = 2
	cfg.Analysis.TopRange = 10
	cfg.Validation.Mode = "none"
	cfg.Validation.TestDraws = 300
	cfg.Validation.AlertThreshold = 4
	cfg.Validation.SaveReport = true
	cfg.Output.SetsToGenerate = 4
	cfg.Output.SaveAnalysis = true
	cfg.Output.Verbose = true
	return cfg
}

// Validate checks configuration consistency before any analysis runs.
func (c *Config) Validate() error {
	if c.Strategy.NumberPool < 2 {
		return fmt.Errorf("strategy.number_pool must be at least 2, got %d", c.Strategy.NumberPool)
	}
	if c.Strategy.NumbersToSelect < 2 {
		return fmt.Errorf("strategy.numbers_to_select must be at least 2, got %d", c.Strategy.NumbersToSelect)
	}
	if c.Strategy.NumbersToSelect > c.Strategy.NumberPool {
		return fmt.Errorf("strategy.numbers_to_select (%d) exceeds pool size (%d)",
			c.Strategy.NumbersToSelect, c.Strategy.NumberPool)
	}
	weights := map[string]float64{
		"frequency_weight": c.Strategy.FrequencyWeight,
		"recent_weight":    c.Strategy.RecentWeight,
		"random_weight":    c.Strategy.RandomWeight,
	}
	for _, name := range []string{"frequency_weight", "recent_weight", "random_weight"} {
		if w := weights[name]; w < 0 || w > 1 {
			return fmt.Errorf("strategy.%s must be within [0, 1], got %g", name, w)
		}
	}
	if c.Strategy.LowNumberMax < 1 {
		return fmt.Errorf("strategy.low_number_max must be positive, got %d", c.Strategy.LowNumberMax)
	}
	if c.Strategy.ColdThreshold < 1 {
		return fmt.Errorf("strategy.cold_threshold must be positive, got %d", c.Strategy.ColdThreshold)
	}
	bins := c.Analysis.RecencyBins
	if bins.Hot > bins.Warm || bins.Warm > bins.Cold {
		return fmt.Errorf("analysis.recency_bins must satisfy hot <= warm <= cold, got %d/%d/%d",
			bins.Hot, bins.Warm, bins.Cold)
	}
	switch c.Validation.Mode {
	case "historical", "new_draw", "both", "none":
	default:
		return fmt.Errorf("validation.mode must be one of historical/new_draw/both/none, got %q", c.Validation.Mode)
	}
	if c.Validation.TestDraws < 1 {
		return fmt.Errorf("validation.test_draws must be positive, got %d", c.Validation.TestDraws)
	}
	if c.Validation.AlertThreshold < 1 || c.Validation.AlertThreshold > c.Strategy.NumbersToSelect {
		return fmt.Errorf("validation.alert_threshold must be within [1, %d], got %d",
			c.Strategy.NumbersToSelect, c.Validation.AlertThreshold)
	}
	if c.Output.SetsToGenerate < 1 {
		return fmt.Errorf("output.sets_to_generate must be positive, got %d", c.Output.SetsToGenerate)
	}
	return nil
}

// EnabledComboSizes returns the combination sizes switched on for analysis.
func (c *Config) EnabledComboSizes() []int {
	toggles := []struct {
		size    int
		enabled bool
	}{
		{2, c.Analysis.Combinations.Pairs},
		{3, c.Analysis.Combinations.Triplets},
		{4, c.Analysis.Combinations.Quadruplets},
		{5, c.Analysis.Combinations.Quintuplets},
		{6, c.Analysis.Combinations.Sixtuplets},
	}
	var sizes []int
	for _, t := range toggles {
		if t.enabled {
			sizes = append(sizes, t.size)
		}
	}
	return sizes
}
