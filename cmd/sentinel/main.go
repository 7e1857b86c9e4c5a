package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"DrawSentinel/internal/analyzer"
	"DrawSentinel/internal/config"
	"DrawSentinel/internal/generator"
	"DrawSentinel/internal/recorder"
	"DrawSentinel/internal/report"
	"DrawSentinel/internal/rng"
	"DrawSentinel/internal/scheduler"
	"DrawSentinel/internal/source"
	"DrawSentinel/internal/validator"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] DrawSentinel starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Prepare output directories
	for _, dir := range []string{cfg.Data.ResultsDir, cfg.Data.StatsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("[FATAL] create %s: %v", dir, err)
		}
	}

	// Init data source
	src := source.NewCSVSource(
		cfg.Data.HistoricalPath, cfg.Data.UpcomingPath, cfg.Data.LatestPath,
		cfg.Strategy.NumberPool, cfg.Strategy.NumbersToSelect,
	)
	log.Printf("[INFO] data source: %s", src.Name())

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	run := func() { runPipeline(cfg, src, rec) }

	// Daemon mode: re-run the pipeline on the draw-night schedule.
	if os.Getenv("DAEMON") == "true" && cfg.Schedule.DrawCron != "" {
		sched := scheduler.New(run)
		if err := sched.Register(cfg.Schedule.DrawCron); err != nil {
			log.Fatalf("[FATAL] register cron task: %v", err)
		}
		sched.Start()
		defer sched.Stop()

		if os.Getenv("RUN_ON_START") == "true" {
			log.Println("[INFO] RUN_ON_START enabled, executing pipeline now")
			sched.RunNow()
		}

		log.Println("[INFO] DrawSentinel is running. Press Ctrl+C to stop.")
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("[INFO] shutdown signal received, stopping...")
		return
	}

	// One-shot mode
	run()
	log.Println("[INFO] DrawSentinel finished")
}

// runPipeline executes one full cycle: load, analyze, generate, validate,
// persist. Failures surface immediately; nothing is retried.
func runPipeline(cfg *config.Config, src source.Source, rec recorder.Recorder) {
	draws, err := source.LoadHistory(src, cfg.Data.MergeUpcoming)
	if err != nil {
		log.Printf("[ERROR] load history: %v", err)
		return
	}
	log.Printf("[INFO] loaded %d historical draws", len(draws))

	a, err := analyzer.New(draws, cfg)
	if err != nil {
		log.Printf("[ERROR] init analyzer: %v", err)
		return
	}
	analysis := a.AnalyzeAll()
	if cfg.Output.Verbose {
		fmt.Print(report.FormatAnalysis(analysis, cfg.Strategy.NumberPool))
	}
	if cfg.Output.SaveAnalysis {
		if path, err := report.SaveAnalysis(cfg.Data.StatsDir, analysis); err != nil {
			log.Printf("[ERROR] save analysis: %v", err)
		} else {
			log.Printf("[INFO] analysis saved to %s", path)
		}
	}

	r := rng.New()
	if cfg.Seed != 0 {
		r = rng.NewSeeded(cfg.Seed)
		log.Printf("[INFO] random source seeded with %d", cfg.Seed)
	}

	gen := generator.New(a, cfg, r)
	sets := gen.Generate()
	fmt.Print(report.FormatSets(sets))

	if path, err := report.WriteSuggestions(cfg.Data.ResultsDir, sets); err != nil {
		log.Printf("[ERROR] save suggestions: %v", err)
	} else {
		log.Printf("[INFO] suggestions saved to %s", path)
	}

	runID := uuid.NewString()
	if err := rec.RecordRun(&recorder.RunRecord{
		RunID:         runID,
		Source:        src.Name(),
		DrawCount:     len(draws),
		SetsRequested: cfg.Output.SetsToGenerate,
		SetsGenerated: len(sets),
		Seed:          cfg.Seed,
	}, sets); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}

	mode := cfg.Validation.Mode
	var validation report.ValidationReport
	validation.Sets = sets

	if mode == "historical" || mode == "both" {
		v, err := validator.New(draws, cfg)
		if err != nil {
			log.Printf("[ERROR] init validator: %v", err)
		} else {
			res := v.Backtest(sets)
			validation.Historical = res
			fmt.Print(report.FormatValidation(res))
			if err := rec.RecordValidation(runID, res); err != nil {
				log.Printf("[ERROR] record validation: %v", err)
			}
		}
	}

	if mode == "new_draw" || mode == "both" {
		latest, err := src.Latest()
		if err != nil {
			log.Printf("[ERROR] load latest draw: %v", err)
		} else if latest == nil {
			log.Println("[WARN] no latest draw available for comparison")
		} else {
			cmp := validator.CompareLatest(latest, sets)
			validation.Latest = cmp
			fmt.Print(report.FormatLatest(cmp))
		}
	}

	if cfg.Validation.SaveReport && mode != "none" {
		if path, err := report.SaveValidationReport(cfg.Data.StatsDir, &validation); err != nil {
			log.Printf("[ERROR] save validation report: %v", err)
		} else {
			log.Printf("[INFO] validation report saved to %s", path)
		}
	}
}
