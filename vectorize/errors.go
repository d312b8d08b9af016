package vectorize

import "errors"

var (
	// ErrEmptyVocabulary is returned when the document-frequency cutoff
	// eliminates every token. Factorizing an empty matrix would silently
	// degrade embeddings, so the collapse is fatal.
	ErrEmptyVocabulary = errors.New("vocabulary empty after pruning")

	// ErrLengthMismatch is returned when one-hot input columns differ in
	// length.
	ErrLengthMismatch = errors.New("columns differ in length")

	// ErrNegativeValue is returned when a one-hot input value is negative.
	ErrNegativeValue = errors.New("negative categorical value")

	// ErrInvalidMinDF is returned for a non-positive document-frequency
	// cutoff.
	ErrInvalidMinDF = errors.New("minimum document frequency must be positive")
)
