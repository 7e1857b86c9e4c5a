package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"DrawSentinel/internal/model"
)

// WriteSuggestions saves the generated sets as CSV in the results directory.
// Single attempt, no retry; a failure surfaces to the caller.
func WriteSuggestions(resultsDir string, sets []model.CandidateSet) (string, error) {
	path := filepath.Join(resultsDir, "suggestions.csv")

	var buf []byte
	buf = append(buf, "numbers,strategy\n"...)
	for _, s := range sets {
		buf = append(buf, fmt.Sprintf("%s,%s\n", joinNumbers(s.Numbers, "-"), s.Strategy)...)
	}
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return "", fmt.Errorf("write suggestions: %w", err)
	}
	return path, nil
}

// ValidationReport is the JSON document persisted after a validated run.
type ValidationReport struct {
	Historical *model.ValidationResult `json:"historical,omitempty"`
	Latest     *model.LatestComparison `json:"latest,omitempty"`
	Sets       []model.CandidateSet    `json:"sets"`
}

// SaveValidationReport writes the validation report to the stats directory.
func SaveValidationReport(statsDir string, rep *ValidationReport) (string, error) {
	path := filepath.Join(statsDir, "validation_report.json")
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal validation report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write validation report: %w", err)
	}
	return path, nil
}

// SaveAnalysis writes the consolidated analysis report to the stats directory.
func SaveAnalysis(statsDir string, rep *model.AnalysisReport) (string, error) {
	path := filepath.Join(statsDir, "analysis.json")
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal analysis: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write analysis: %w", err)
	}
	return path, nil
}
