package source

import "DrawSentinel/internal/model"

// MockSource returns controllable fixed data for development and testing.
type MockSource struct {
	HistoricalDraws []model.Draw
	UpcomingDraws   []model.Draw
	LatestDraw      *model.Draw
	Err             error
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) Historical() ([]model.Draw, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.HistoricalDraws, nil
}

func (m *MockSource) Upcoming() ([]model.Draw, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.UpcomingDraws, nil
}

func (m *MockSource) Latest() (*model.Draw, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.LatestDraw, nil
}
