package storage

import "errors"

var (
	// ErrNotFound indicates no frame is stored under the requested key.
	ErrNotFound = errors.New("feature frame not found")

	// ErrNilFrame indicates a nil frame was handed to the store.
	ErrNilFrame = errors.New("feature frame required")

	// ErrBackendRequired is returned when a repository is built without
	// a backend.
	ErrBackendRequired = errors.New("storage backend required")

	// ErrBackendClosed is returned when a repository is built on a
	// backend that has already been closed.
	ErrBackendClosed = errors.New("storage backend is closed")

	// ErrCorruptFrame indicates stored frame bytes failed to decode.
	ErrCorruptFrame = errors.New("corrupt feature frame data")
)
