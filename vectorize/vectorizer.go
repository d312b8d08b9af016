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


package vectorize

import (
	"math"
	"sort"
	"strings"
)

// Mode selects how token occurrences are weighted.
type Mode int

const (
	// ModeCount emits raw token counts.
	ModeCount Mode = iota
	// ModeTFIDF applies smoothed inverse-document-frequency weighting and
	// L2 row normalization.
	ModeTFIDF
)

// Vectorizer converts an ordered document sequence into a sparse
// document-term matrix. Tokens appearing in fewer than MinDF documents
// are excluded from the vocabulary. Given an identical document sequence
// and configuration the output is identical.
type Vectorizer struct {
	Mode  Mode
	MinDF int
}

// FitTransform tokenizes the documents on whitespace, builds the pruned
// vocabulary and returns the document-term matrix with one row per
// document. Empty documents produce all-zero rows. If pruning eliminates
// the whole vocabulary the matrix would be useless to factorize, so
// ErrEmptyVocabulary is returned instead.
func (v *Vectorizer) FitTransform(docs []string) (*CSRMatrix, error) {
	if v.MinDF < 1 {
		return nil, ErrInvalidMinDF
	}

	// Document frequency per token.
	df := make(map[string]int)
	tokenized := make([][]string, len(docs))
	for i, doc := range docs {
		tokens := strings.Fields(doc)
		tokenized[i] = tokens
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; !ok {
				seen[tok] = struct{}{}
				df[tok]++
			}
		}
	}

	// Vocabulary: surviving tokens in sorted order for determinism.
	vocab := make(map[string]int)
	terms := make([]string, 0, len(df))
	for tok, n := range df {
		if n >= v.MinDF {
			terms = append(terms, tok)
		}
	}
	if len(terms) == 0 {
		return nil, ErrEmptyVocabulary
	}
	sort.Strings(terms)
	for i, tok := range terms {
		vocab[tok] = i
	}

	m := &CSRMatrix{
		Rows:   len(docs),
		Cols:   len(terms),
		RowPtr: make([]int, 1, len(docs)+1),
	}
	counts := make(map[int]float32)
	for _, tokens := range tokenized {
		clear(counts)
		for _, tok := range tokens {
			if col, ok := vocab[tok]; ok {
				counts[col]++
			}
		}
		cols := make([]int, 0, len(counts))
		for col := range counts {
			cols = append(cols, col)
		}
		sort.Ints(cols)
		for _, col := range cols {
			m.ColIdx = append(m.ColIdx, col)
			m.Values = append(m.Values, counts[col])
		}
		m.RowPtr = append(m.RowPtr, len(m.ColIdx))
	}

	if v.Mode == ModeTFIDF {
		ApplyTFIDF(m)
	}
	return m, nil
}

// ApplyTFIDF reweights a count matrix in place with smoothed idf,
// idf(t) = ln((1+n)/(1+df(t))) + 1, then normalizes each row to unit L2
// norm. The smoothing keeps idf finite for terms present in every
// document.
func ApplyTFIDF(m *CSRMatrix) {
	df := m.documentFrequencies()
	weights := make([]float64, m.Cols)
	n := float64(m.Rows)
	for c, d := range df {
		weights[c] = math.Log((1+n)/(1+float64(d))) + 1
	}
	m.ScaleColumns(weights)
	m.NormalizeRows()
}
