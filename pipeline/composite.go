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
	"github.com/poiesic/coocvec/corpus"
	"github.com/poiesic/coocvec/factorize"
	"github.com/poiesic/coocvec/vectorize"
)

const (
	// DefaultMinKeyCount drops composite keys observed fewer than this
	// many times before factorization.
	DefaultMinKeyCount = 3

	// compositeLargeRowCount is the row count at which the composite
	// vectorizer tightens its document-frequency cutoff from 1 to 2.
	compositeLargeRowCount = 1_000_000
)

// CompositeLatent groups a target column's values by a bit-packed
// composite key, topic-decomposes the resulting documents and broadcasts
// each key's latent row onto every record sharing the key. Records whose
// key fell below the frequency threshold receive all-zero vectors.
type CompositeLatent struct {
	name     string
	spec     *corpus.KeySpec
	target   string
	minCount int
	width    int
	settings
}

// NewCompositeLatent builds a composite-key transformer with an explicit
// key spec and target column.
func NewCompositeLatent(name string, spec *corpus.KeySpec, target string, width int, opts ...Option) *CompositeLatent {
	return &CompositeLatent{
		name:     name,
		spec:     spec,
		target:   target,
		minCount: DefaultMinKeyCount,
		width:    width,
		settings: newSettings(opts...),
	}
}

// NewCompositeLDA30 is the shipped user/item variant: keys packed from
// (channel, os, device, ip), app as the token stream, LDA width 30.
func NewCompositeLDA30(opts ...Option) *CompositeLatent {
	return NewCompositeLatent("composite_lda_30", corpus.DefaultKeySpec(), "app", 30, opts...)
}

// Name returns the feature name used as the column prefix.
func (c *CompositeLatent) Name() string {
	return c.name
}

// Transform builds the filtered composite corpus on the concatenated
// splits, fits one topic model and broadcasts through the key map.
func (c *CompositeLatent) Transform(train, test *core.Dataset) (*core.FeatureFrame, *core.FeatureFrame, error) {
	required := append(append([]string{}, c.spec.Columns()...), c.target)
	if err := validateSplits(train, test, required); err != nil {
		return nil, nil, err
	}
	full, err := core.Concat(train, test)
	if err != nil {
		return nil, nil, err
	}

	cc, err := corpus.BuildCompositeDocuments(full, c.spec, c.target, c.minCount)
	if err != nil {
		return nil, nil, err
	}
	c.logger.Info("built composite-key documents",
		"feature", c.name, "rows", full.Len(), "documents", len(cc.Documents))

	minDF := 1
	if full.Len() >= compositeLargeRowCount {
		minDF = 2
	}
	vec := vectorize.Vectorizer{Mode: vectorize.ModeCount, MinDF: minDF}
	dtm, err := vec.FitTransform(cc.Documents)
	if err != nil {
		return nil, nil, err
	}

	fac, err := factorize.New(factorize.Config{Algorithm: factorize.AlgorithmLDA, Width: c.width, Seed: c.seed})
	if err != nil {
		return nil, nil, err
	}
	dense, err := fac.FitTransform(dtm)
	if err != nil {
		return nil, nil, err
	}
	latent := toFloat32Rows(dense)

	trainFrame, err := assembleCompositeFrame(train, c.name, c.spec, cc.KeyToID, latent, c.width)
	if err != nil {
		return nil, nil, err
	}
	testFrame, err := assembleCompositeFrame(test, c.name, c.spec, cc.KeyToID, latent, c.width)
	if err != nil {
		return nil, nil, err
	}
	return trainFrame, testFrame, nil
}
