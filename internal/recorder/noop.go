package recorder

import "DrawSentinel/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRun(_ *RunRecord, _ []model.CandidateSet) error       { return nil }
func (n *NoopRecorder) RecordValidation(_ string, _ *model.ValidationResult) error { return nil }
func (n *NoopRecorder) Close() error                                               { return nil }
