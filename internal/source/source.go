package source

import "DrawSentinel/internal/model"

// Source defines the interface for loading draw data.
type Source interface {
	Historical() ([]model.Draw, error)
	Upcoming() ([]model.Draw, error)
	Latest() (*model.Draw, error)
	Name() string
}

// LoadHistory loads the historical table from a source, appending validated
// upcoming draws when merge is enabled. The table stays ordered by date
// ascending because both files are stored that way.
func LoadHistory(src Source, mergeUpcoming bool) ([]model.Draw, error) {
	draws, err := src.Historical()
	if err != nil {
		return nil, err
	}
	if !mergeUpcoming {
		return draws, nil
	}
	upcoming, err := src.Upcoming()
	if err != nil {
		return nil, err
	}
	return append(draws, upcoming...), nil
}
