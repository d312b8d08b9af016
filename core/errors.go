package core

import "errors"

// Domain validation errors
var (
	// ErrMissingColumn indicates a required column is absent from a dataset.
	ErrMissingColumn = errors.New("missing column")

	// ErrDuplicateColumn indicates a column name was added twice.
	ErrDuplicateColumn = errors.New("duplicate column")

	// ErrLengthMismatch indicates a column's length disagrees with the dataset.
	ErrLengthMismatch = errors.New("column length mismatch")

	// ErrSchemaMismatch indicates two datasets do not share a schema.
	ErrSchemaMismatch = errors.New("dataset schema mismatch")

	// ErrNegativeValue indicates a categorical column holds a negative value.
	ErrNegativeValue = errors.New("negative categorical value")

	// ErrInvalidFrame indicates feature frame data is malformed.
	ErrInvalidFrame = errors.New("invalid feature frame")
)
