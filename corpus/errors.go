package corpus

import "errors"

var (
	// ErrLengthMismatch is returned when paired columns differ in length.
	ErrLengthMismatch = errors.New("columns differ in length")

	// ErrKeyOverflow is returned when a column value does not fit the bit
	// width allotted to it in a composite key. Without this check two
	// distinct key tuples would silently collide.
	ErrKeyOverflow = errors.New("composite key field overflow")

	// ErrKeySpecTooWide is returned when a key spec's total bit width
	// exceeds 64.
	ErrKeySpecTooWide = errors.New("composite key spec exceeds 64 bits")

	// ErrEmptyKeySpec is returned when a key spec has no fields.
	ErrEmptyKeySpec = errors.New("composite key spec has no fields")
)
