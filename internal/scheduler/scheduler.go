package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler re-runs the analysis pipeline on a draw-night cron schedule.
// Runs are serialized by cron's default job wrapper order; the pipeline
// itself is synchronous.
type Scheduler struct {
	cron *cron.Cron
	run  func()
}

// New creates a Scheduler around the pipeline function.
func New(run func()) *Scheduler {
	return &Scheduler{cron: cron.New(cron.WithSeconds()), run: run}
}

// Register adds the draw-night schedule.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return fmt.Errorf("register draw task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the pipeline immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.run()
}
