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


package pipeline

import (
	"log/slog"

	"gonum.org/v1/gonum/mat"

	"github.com/poiesic/coocvec/core"
)

// Default configuration shared by the shipped transformers.
const (
	// DefaultSeed is the fixed random seed threaded into every
	// factorization for reproducibility.
	DefaultSeed int64 = 71
	// DefaultWorkers is the pair-job worker pool size.
	DefaultWorkers = 4
	// DefaultMinDF is the minimum document frequency for pairwise
	// vectorization.
	DefaultMinDF = 2
)

// Transformer computes one feature variant for a train/test dataset
// pair. Fitting happens once on the concatenation of both splits; the
// returned frames are row-aligned with their respective splits and share
// the same column set. Each invocation fits fresh models and discards
// them; only the frames survive.
type Transformer interface {
	Name() string
	Transform(train, test *core.Dataset) (trainFrame, testFrame *core.FeatureFrame, err error)
}

// settings holds the construction-time knobs common to all transformers.
type settings struct {
	columns []string
	workers int
	seed    int64
	logger  *slog.Logger
}

// Option configures a transformer at construction.
type Option func(*settings)

// WithColumns overrides the categorical column set. Default is the fixed
// {ip, app, os, device, channel} schema.
func WithColumns(columns []string) Option {
	return func(s *settings) {
		if len(columns) > 0 {
			s.columns = columns
		}
	}
}

// WithWorkers sets the pair-job worker pool size. Default is 4.
func WithWorkers(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithSeed sets the factorization random seed. Default is 71.
func WithSeed(seed int64) Option {
	return func(s *settings) {
		s.seed = seed
	}
}

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func newSettings(opts ...Option) settings {
	s := settings{
		columns: core.CategoricalColumns,
		workers: DefaultWorkers,
		seed:    DefaultSeed,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// validateSplits applies the shared input contract for a transformer.
func validateSplits(train, test *core.Dataset, required []string) error {
	if train == nil || test == nil {
		return ErrNilDataset
	}
	if err := core.ValidateDataset(train, required); err != nil {
		return err
	}
	return core.ValidateDataset(test, required)
}

// toFloat32Rows copies a dense latent matrix into per-row float32
// slices, the in-memory form broadcast into feature frames. Latent
// values are narrowed to float32 as soon as fitting finishes to bound
// peak memory.
func toFloat32Rows(d *mat.Dense) [][]float32 {
	rows, cols := d.Dims()
	out := make([][]float32, rows)
	for i := 0; i < rows; i++ {
		row := make([]float32, cols)
		for j := 0; j < cols; j++ {
			row[j] = float32(d.At(i, j))
		}
		out[i] = row
	}
	return out
}
