package factorize

import "errors"

var (
	// ErrEmptyMatrix is returned when the document-term matrix has no
	// rows or no columns. Factorizing it would produce meaningless
	// embeddings, so the condition is fatal rather than degraded to
	// zero vectors.
	ErrEmptyMatrix = errors.New("empty document-term matrix")

	// ErrInvalidWidth is returned for a non-positive embedding width.
	ErrInvalidWidth = errors.New("embedding width must be positive")

	// ErrWidthTooLarge is returned when the requested width exceeds the
	// matrix rank bound min(rows, cols).
	ErrWidthTooLarge = errors.New("embedding width exceeds matrix dimensions")

	// ErrUnknownAlgorithm is returned for an unrecognized algorithm value.
	ErrUnknownAlgorithm = errors.New("unknown factorization algorithm")

	// ErrSVDFailed is returned when the singular value decomposition does
	// not converge.
	ErrSVDFailed = errors.New("singular value decomposition failed")
)
