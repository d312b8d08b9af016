package pipeline

import "errors"

var (
	// ErrNilDataset is returned when a transformer receives a nil split.
	ErrNilDataset = errors.New("dataset required")

	// ErrTooFewColumns is returned when fewer than two columns are
	// configured for pairwise co-occurrence.
	ErrTooFewColumns = errors.New("pairwise co-occurrence needs at least two columns")
)
