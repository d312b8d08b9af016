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
	"github.com/poiesic/coocvec/core"
	"github.com/poiesic/coocvec/factorize"
	"github.com/poiesic/coocvec/vectorize"
)

// SingleLatent is the single-pipeline variant: one-hot encode all
// categorical columns of the concatenated splits, optionally reweight
// with tf-idf, and reduce with truncated SVD. No per-pair iteration; one
// latent row per record, split back by row offset.
type SingleLatent struct {
	name  string
	tfidf bool
	width int
	settings
}

// NewSingleSVDCount is the one-hot count variant, width 30.
func NewSingleSVDCount(opts ...Option) *SingleLatent {
	return &SingleLatent{name: "single_svd_count", width: 30, settings: newSettings(opts...)}
}

// NewSingleSVDTFIDF is the one-hot tf-idf variant, width 30.
func NewSingleSVDTFIDF(opts ...Option) *SingleLatent {
	return &SingleLatent{name: "single_svd_tfidf", tfidf: true, width: 30, settings: newSettings(opts...)}
}

// Name returns the feature name used as the column prefix.
func (s *SingleLatent) Name() string {
	return s.name
}

// Transform one-hot encodes the concatenated splits, factorizes once and
// slices the latent matrix back into row-aligned train and test frames.
func (s *SingleLatent) Transform(train, test *core.Dataset) (*core.FeatureFrame, *core.FeatureFrame, error) {
	if err := validateSplits(train, test, s.columns); err != nil {
		return nil, nil, err
	}
	full, err := core.Concat(train, test)
	if err != nil {
		return nil, nil, err
	}

	cols := make([][]int, len(s.columns))
	for i, name := range s.columns {
		col, err := full.Column(name)
		if err != nil {
			return nil, nil, err
		}
		cols[i] = col
	}
	m, err := vectorize.OneHot(cols)
	if err != nil {
		return nil, nil, err
	}
	if s.tfidf {
		vectorize.ApplyTFIDF(m)
	}

	s.logger.Info("computing single-pipeline latent vectors",
		"feature", s.name, "rows", m.Rows, "encoded_columns", m.Cols)

	fac, err := factorize.New(factorize.Config{Algorithm: factorize.AlgorithmSVD, Width: s.width, Seed: s.seed})
	if err != nil {
		return nil, nil, err
	}
	dense, err := fac.FitTransform(m)
	if err != nil {
		return nil, nil, err
	}
	latent := toFloat32Rows(dense)

	trainFrame := assembleSingleFrame(s.name, latent, 0, train.Len(), s.width)
	testFrame := assembleSingleFrame(s.name, latent, train.Len(), test.Len(), s.width)
	return trainFrame, testFrame, nil
}
