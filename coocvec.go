// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package coocvec computes low-dimensional latent embeddings for
// high-cardinality categorical columns. Co-occurrence documents are
// built per column pair or composite key, vectorized into sparse
// count or tf-idf matrices, factorized with LDA, truncated SVD, or
// NMF, and the resulting latent vectors are broadcast back onto the
// row level of the train and test splits.
//
// Service is the top-level entry point: it owns the registry of
// shipped feature variants and a BadgerDB-backed store of computed
// frames, so repeated runs over identical data are served from
// storage instead of refit.
package coocvec

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/poiesic/coocvec/core"
	"github.com/poiesic/coocvec/pipeline"
	"github.com/poiesic/coocvec/storage"
	badgerstore "github.com/poiesic/coocvec/storage/badger"
)

// ErrUnknownFeature is returned when a feature name is not in the
// registry.
var ErrUnknownFeature = errors.New("unknown feature")

// Service computes and persists latent categorical features.
type Service struct {
	store   storage.FeatureRepository
	backend *badgerstore.Backend
	logger  *slog.Logger

	variants map[string]pipeline.Transformer
}

// Option configures a Service.
type Option func(*serviceConfig)

type serviceConfig struct {
	logger  *slog.Logger
	workers int
	seed    int64
}

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithWorkers sets the pair-job worker pool size for the pairwise
// variants.
func WithWorkers(n int) Option {
	return func(c *serviceConfig) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithSeed overrides the factorization random seed for every variant.
func WithSeed(seed int64) Option {
	return func(c *serviceConfig) {
		c.seed = seed
	}
}

// NewService opens the frame store at dbPath and builds the variant
// registry. An empty dbPath opens an in-memory store.
func NewService(dbPath string, opts ...Option) (*Service, error) {
	cfg := serviceConfig{
		logger:  slog.Default(),
		workers: pipeline.DefaultWorkers,
		seed:    pipeline.DefaultSeed,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	backend, err := badgerstore.OpenBackend(dbPath, dbPath == "")
	if err != nil {
		return nil, fmt.Errorf("opening frame store: %w", err)
	}
	store, err := badgerstore.NewFeatureStore(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	popts := []pipeline.Option{
		pipeline.WithLogger(cfg.logger),
		pipeline.WithWorkers(cfg.workers),
		pipeline.WithSeed(cfg.seed),
	}
	variants := make(map[string]pipeline.Transformer)
	for _, t := range []pipeline.Transformer{
		pipeline.NewPairLDA5(popts...),
		pipeline.NewPairSVD5(popts...),
		pipeline.NewPairNMF5(popts...),
		pipeline.NewSingleSVDCount(popts...),
		pipeline.NewSingleSVDTFIDF(popts...),
		pipeline.NewCompositeLDA30(popts...),
	} {
		variants[t.Name()] = t
	}

	return &Service{
		store:    store,
		backend:  backend,
		logger:   cfg.logger,
		variants: variants,
	}, nil
}

// Close releases the store and its backend.
func (s *Service) Close() error {
	if err := s.store.Close(); err != nil {
		s.backend.Close()
		return err
	}
	return s.backend.Close()
}

// Features returns the registered feature names, sorted.
func (s *Service) Features() []string {
	names := make([]string, 0, len(s.variants))
	for name := range s.variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ComputeResult carries the frames of one computed feature.
type ComputeResult struct {
	Feature    string
	TrainFrame *core.FeatureFrame
	TestFrame  *core.FeatureFrame
	// FromStore is true when both frames were served from storage
	// without refitting.
	FromStore bool
}

// Compute fits the named feature on the train/test pair and returns
// both frames. When the store already holds frames computed from the
// same train/test pair, those are returned instead and no fitting
// happens. Freshly computed frames are persisted before returning.
//
// Both stored frames are keyed by the fingerprint of the whole pair:
// fitting happens on the concatenation of the splits, so a train frame
// is only valid alongside the exact test split it was fitted with.
func (s *Service) Compute(ctx context.Context, feature string, train, test *core.Dataset) (*ComputeResult, error) {
	transformer, ok := s.variants[feature]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFeature, feature)
	}
	if train == nil || test == nil {
		return nil, pipeline.ErrNilDataset
	}

	fit := core.FingerprintPair(train, test)
	trainKey := storage.FrameKey{
		Feature: feature,
		Dataset: fit,
		Split:   storage.SplitTrain,
	}
	testKey := storage.FrameKey{
		Feature: feature,
		Dataset: fit,
		Split:   storage.SplitTest,
	}

	trainFrame, trainErr := s.store.GetFrame(ctx, trainKey)
	testFrame, testErr := s.store.GetFrame(ctx, testKey)
	if trainErr == nil && testErr == nil {
		s.logger.Info("feature served from store", "feature", feature)
		return &ComputeResult{
			Feature:    feature,
			TrainFrame: trainFrame,
			TestFrame:  testFrame,
			FromStore:  true,
		}, nil
	}
	if trainErr != nil && !errors.Is(trainErr, storage.ErrNotFound) {
		return nil, trainErr
	}
	if testErr != nil && !errors.Is(testErr, storage.ErrNotFound) {
		return nil, testErr
	}

	s.logger.Info("computing feature",
		"feature", feature,
		"train_rows", train.Len(),
		"test_rows", test.Len())
	trainFrame, testFrame, err := transformer.Transform(train, test)
	if err != nil {
		return nil, fmt.Errorf("computing %s: %w", feature, err)
	}

	if err := s.store.PutFrame(ctx, trainKey, trainFrame); err != nil {
		return nil, fmt.Errorf("storing %s train frame: %w", feature, err)
	}
	if err := s.store.PutFrame(ctx, testKey, testFrame); err != nil {
		return nil, fmt.Errorf("storing %s test frame: %w", feature, err)
	}

	return &ComputeResult{
		Feature:    feature,
		TrainFrame: trainFrame,
		TestFrame:  testFrame,
	}, nil
}

// List enumerates every stored frame.
func (s *Service) List(ctx context.Context) ([]storage.FrameKey, error) {
	return s.store.ListFrames(ctx)
}

// Drop removes every stored frame of the named feature, returning how
// many were removed. Unknown names are not an error; zero is returned.
func (s *Service) Drop(ctx context.Context, feature string) (int, error) {
	return s.store.DeleteFeature(ctx, feature)
}
