// Package storage defines persistence for computed feature frames.
//
// Frames are addressed by (feature name, train/test pair fingerprint,
// split) so a recomputation over the same pair can be served from the
// store instead of refitting. Only frames are persisted; fitted factorization
// models are always discarded.
package storage
