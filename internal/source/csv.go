package source

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"DrawSentinel/internal/model"
)

// Draw files are headerless CSV rows of the form "MM/DD/YY,n-n-n-n-n-n".
const dateLayout = "01/02/06"

var (
	// ErrNumberOutOfRange indicates a loaded draw contains a number outside [1, pool].
	ErrNumberOutOfRange = errors.New("number out of range")

	// ErrDuplicateNumber indicates a loaded draw contains the same number twice.
	ErrDuplicateNumber = errors.New("duplicate number in draw")

	// ErrWrongDrawSize indicates a loaded draw does not contain exactly the configured count.
	ErrWrongDrawSize = errors.New("wrong number count in draw")
)

// CSVSource loads draw data from local CSV files.
// Any invalid row fails the whole load; no partial table is produced.
type CSVSource struct {
	HistoricalPath string
	UpcomingPath   string
	LatestPath     string
	Pool           int
	Pick           int
}

// NewCSVSource creates a CSVSource for the configured paths and draw shape.
func NewCSVSource(historicalPath, upcomingPath, latestPath string, pool, pick int) *CSVSource {
	return &CSVSource{
		HistoricalPath: historicalPath,
		UpcomingPath:   upcomingPath,
		LatestPath:     latestPath,
		Pool:           pool,
		Pick:           pick,
	}
}

func (s *CSVSource) Name() string { return "csv" }

// Historical loads and validates the historical draw file.
func (s *CSVSource) Historical() ([]model.Draw, error) {
	draws, err := s.loadFile(s.HistoricalPath)
	if err != nil {
		return nil, fmt.Errorf("load historical: %w", err)
	}
	return draws, nil
}

// Upcoming loads the optional upcoming draw file. An unset path or a missing
// file yields no draws; an invalid row still fails the load.
func (s *CSVSource) Upcoming() ([]model.Draw, error) {
	if strings.TrimSpace(s.UpcomingPath) == "" {
		return nil, nil
	}
	draws, err := s.loadFile(s.UpcomingPath)
	if err != nil {
		if os.IsNotExist(err) || errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("load upcoming: %w", err)
	}
	return draws, nil
}

// Latest loads the optional latest-draw file and returns its last row,
// or nil when the path is unset, missing, or empty.
func (s *CSVSource) Latest() (*model.Draw, error) {
	if strings.TrimSpace(s.LatestPath) == "" {
		return nil, nil
	}
	draws, err := s.loadFile(s.LatestPath)
	if err != nil {
		if os.IsNotExist(err) || errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("load latest: %w", err)
	}
	if len(draws) == 0 {
		return nil, nil
	}
	latest := draws[len(draws)-1]
	return &latest, nil
}

func (s *CSVSource) loadFile(path string) ([]model.Draw, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var draws []model.Draw
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		draw, err := s.parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, lineNo, err)
		}
		draws = append(draws, draw)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return draws, nil
}

func (s *CSVSource) parseLine(line string) (model.Draw, error) {
	parts := strings.SplitN(line, ",", 2)
	if len(parts) != 2 {
		return model.Draw{}, fmt.Errorf("expected \"date,numbers\", got %q", line)
	}

	date, err := time.Parse(dateLayout, strings.TrimSpace(parts[0]))
	if err != nil {
		return model.Draw{}, fmt.Errorf("parse date %q: %w", parts[0], err)
	}

	fields := strings.Split(strings.TrimSpace(parts[1]), "-")
	numbers := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return model.Draw{}, fmt.Errorf("parse number %q: %w", field, err)
		}
		numbers = append(numbers, n)
	}

	draw := model.Draw{Date: date, Numbers: numbers}
	if err := ValidateDraw(draw, s.Pool, s.Pick); err != nil {
		return model.Draw{}, err
	}
	return draw, nil
}

// ValidateDraw checks the draw's range and uniqueness invariants.
func ValidateDraw(d model.Draw, pool, pick int) error {
	if len(d.Numbers) != pick {
		return fmt.Errorf("%w: got %d, want %d", ErrWrongDrawSize, len(d.Numbers), pick)
	}
	seen := make(map[int]bool, len(d.Numbers))
	for _, n := range d.Numbers {
		if n < 1 || n > pool {
			return fmt.Errorf("%w: %d not in [1, %d]", ErrNumberOutOfRange, n, pool)
		}
		if seen[n] {
			return fmt.Errorf("%w: %d", ErrDuplicateNumber, n)
		}
		seen[n] = true
	}
	return nil
}
