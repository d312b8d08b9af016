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
	"fmt"

	"github.com/poiesic/coocvec/core"
	"github.com/poiesic/coocvec/corpus"
	"github.com/poiesic/coocvec/factorize"
	"github.com/poiesic/coocvec/vectorize"
)

// Pairwise computes one latent embedding per ordered column pair: for
// every (col1, col2) with distinct members it builds co-occurrence
// documents, vectorizes them and factorizes the document-term matrix,
// then broadcasts the fitted vectors onto both splits. The per-pair jobs
// run on a bounded worker pool.
type Pairwise struct {
	name       string
	vectorizer vectorize.Vectorizer
	algorithm  factorize.Algorithm
	width      int
	settings
}

// NewPairwise builds a pairwise co-occurrence transformer with an
// explicit vectorizer mode, factorization algorithm and width.
func NewPairwise(name string, mode vectorize.Mode, algorithm factorize.Algorithm, width int, opts ...Option) *Pairwise {
	return &Pairwise{
		name:       name,
		vectorizer: vectorize.Vectorizer{Mode: mode, MinDF: DefaultMinDF},
		algorithm:  algorithm,
		width:      width,
		settings:   newSettings(opts...),
	}
}

// NewPairLDA5 is the count-vectorized topic-decomposition variant,
// width 5.
func NewPairLDA5(opts ...Option) *Pairwise {
	return NewPairwise("pair_lda_5", vectorize.ModeCount, factorize.AlgorithmLDA, 5, opts...)
}

// NewPairSVD5 is the tf-idf truncated-SVD variant, width 5.
func NewPairSVD5(opts ...Option) *Pairwise {
	return NewPairwise("pair_svd_5", vectorize.ModeTFIDF, factorize.AlgorithmSVD, 5, opts...)
}

// NewPairNMF5 is the tf-idf non-negative-factorization variant, width 5.
func NewPairNMF5(opts ...Option) *Pairwise {
	return NewPairwise("pair_nmf_5", vectorize.ModeTFIDF, factorize.AlgorithmNMF, 5, opts...)
}

// Name returns the feature name used as the column prefix.
func (p *Pairwise) Name() string {
	return p.name
}

// Width returns the embedding width per pair.
func (p *Pairwise) Width() int {
	return p.width
}

// Transform fits one latent matrix per ordered column pair on the
// concatenated splits and assembles the broadcast frames for each split.
func (p *Pairwise) Transform(train, test *core.Dataset) (*core.FeatureFrame, *core.FeatureFrame, error) {
	if len(p.columns) < 2 {
		return nil, nil, ErrTooFewColumns
	}
	if err := validateSplits(train, test, p.columns); err != nil {
		return nil, nil, err
	}
	full, err := core.Concat(train, test)
	if err != nil {
		return nil, nil, err
	}

	pairs := ColumnPairs(p.columns)
	p.logger.Info("computing pairwise latent vectors",
		"feature", p.name, "pairs", len(pairs), "workers", p.workers, "rows", full.Len())

	latents, err := runPairJobs(p.workers, pairs, func(job Pair) ([][]float32, error) {
		return p.fitPair(full, job)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("feature %s: %w", p.name, err)
	}

	trainFrame, err := assemblePairFrame(train, p.name, pairs, latents, p.width)
	if err != nil {
		return nil, nil, err
	}
	testFrame, err := assemblePairFrame(test, p.name, pairs, latents, p.width)
	if err != nil {
		return nil, nil, err
	}
	return trainFrame, testFrame, nil
}

// fitPair is one worker job: documents, document-term matrix, latent
// matrix. The sparse intermediates go out of scope when the job returns,
// so only the narrowed float32 latent rows survive until assembly.
func (p *Pairwise) fitPair(full *core.Dataset, job Pair) ([][]float32, error) {
	col1, err := full.Column(job.Col1)
	if err != nil {
		return nil, err
	}
	col2, err := full.Column(job.Col2)
	if err != nil {
		return nil, err
	}
	docs, err := corpus.BuildDocuments(col1, col2)
	if err != nil {
		return nil, err
	}

	dtm, err := p.vectorizer.FitTransform(docs)
	if err != nil {
		return nil, err
	}

	fac, err := factorize.New(factorize.Config{Algorithm: p.algorithm, Width: p.width, Seed: p.seed})
	if err != nil {
		return nil, err
	}
	latent, err := fac.FitTransform(dtm)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("fitted pair latent vectors",
		"feature", p.name, "col1", job.Col1, "col2", job.Col2,
		"documents", dtm.Rows, "vocabulary", dtm.Cols)
	return toFloat32Rows(latent), nil
}
