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


package factorize

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/poiesic/coocvec/vectorize"
)

// Algorithm selects the concrete decomposition.
type Algorithm int

const (
	// AlgorithmLDA is online variational latent Dirichlet allocation.
	AlgorithmLDA Algorithm = iota
	// AlgorithmSVD is truncated singular value decomposition.
	AlgorithmSVD
	// AlgorithmNMF is non-negative matrix factorization.
	AlgorithmNMF
)

// String returns the algorithm name.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmLDA:
		return "lda"
	case AlgorithmSVD:
		return "svd"
	case AlgorithmNMF:
		return "nmf"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// Config fixes a factorizer's behavior at construction. The seed is
// threaded into every stochastic algorithm rather than read from
// process-wide random state, so independent jobs reproduce bit-identical
// results regardless of scheduling.
type Config struct {
	Algorithm Algorithm
	Width     int
	Seed      int64
}

// Factorizer maps a sparse document-term matrix to a dense latent matrix
// with one row per document and exactly the configured width.
type Factorizer interface {
	FitTransform(m *vectorize.CSRMatrix) (*mat.Dense, error)
}

// New builds the factorizer selected by the configuration.
func New(cfg Config) (Factorizer, error) {
	if cfg.Width < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, cfg.Width)
	}
	switch cfg.Algorithm {
	case AlgorithmLDA:
		return &latentDirichlet{width: cfg.Width, seed: cfg.Seed}, nil
	case AlgorithmSVD:
		return &truncatedSVD{width: cfg.Width}, nil
	case AlgorithmNMF:
		return &nonNegative{width: cfg.Width, seed: cfg.Seed}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, cfg.Algorithm)
	}
}

// checkMatrix applies the shared input contract.
func checkMatrix(m *vectorize.CSRMatrix) error {
	if m == nil || m.Rows == 0 || m.Cols == 0 {
		return ErrEmptyMatrix
	}
	return nil
}
