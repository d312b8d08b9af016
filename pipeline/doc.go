// Package pipeline provides the feature transformers that turn
// categorical co-occurrence into dense latent feature frames.
//
// A Transformer fits on the concatenated train and test splits and
// broadcasts the fitted latent vectors back onto each split separately.
// The pairwise transformer fans its 20 column-pair jobs out over a
// fixed-size worker pool; jobs are pure functions of the shared
// read-only dataset and results are collected in submission order.
// Any job failure aborts the whole computation with no partial output.
package pipeline
