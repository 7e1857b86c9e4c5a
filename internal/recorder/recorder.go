package recorder

import "DrawSentinel/internal/model"

// RunRecord holds the metadata of one generation run.
type RunRecord struct {
	RunID         string
	Source        string
	DrawCount     int
	SetsRequested int
	SetsGenerated int
	Seed          uint64
}

// Recorder persists run history for later inspection.
type Recorder interface {
	RecordRun(run *RunRecord, sets []model.CandidateSet) error
	RecordValidation(runID string, res *model.ValidationResult) error
	Close() error
}
