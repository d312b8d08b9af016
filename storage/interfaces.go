package storage

import (
	"context"

	"github.com/poiesic/coocvec/core"
)

// Split identifies which half of a train/test computation a stored
// frame belongs to.
type Split string

const (
	SplitTrain Split = "train"
	SplitTest  Split = "test"
)

// FrameKey addresses one stored frame. Dataset is the fingerprint of
// the train/test pair the frame's fit consumed; both splits shape the
// fitted latent matrices, so a frame keyed by one split alone could be
// served against data it was never fitted with.
type FrameKey struct {
	Feature string
	Dataset core.ID
	Split   Split
}

// FeatureRepository persists computed feature frames.
type FeatureRepository interface {
	// PutFrame stores a frame under the given key, replacing any
	// previous frame stored there.
	PutFrame(ctx context.Context, key FrameKey, frame *core.FeatureFrame) error

	// GetFrame retrieves a stored frame. Returns ErrNotFound when no
	// frame exists under the key.
	GetFrame(ctx context.Context, key FrameKey) (*core.FeatureFrame, error)

	// DeleteFeature removes every frame stored for the named feature
	// across all datasets and splits, returning how many were removed.
	DeleteFeature(ctx context.Context, feature string) (int, error)

	// ListFrames enumerates the keys of every stored frame.
	ListFrames(ctx context.Context) ([]FrameKey, error)

	// Close releases repository resources. The underlying backend is
	// owned by the caller and is not closed.
	Close() error
}
