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
	"math"

	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/poiesic/coocvec/vectorize"
)

// Online variational Bayes hyperparameters, matching the usual online
// LDA defaults: symmetric priors 1/width, learning rate
// (offset + update)^-decay over mini-batches.
const (
	ldaPasses    = 10
	ldaBatchSize = 128
	ldaDecay     = 0.7
	ldaOffset    = 10.0
	ldaEStepIter = 100
	ldaMeanTol   = 1e-3
)

// latentDirichlet fits topic mixtures with stochastic mini-batch updates
// to the topic-word variational parameter lambda, then returns the
// normalized per-document topic distribution.
type latentDirichlet struct {
	width int
	seed  int64
}

func (f *latentDirichlet) FitTransform(m *vectorize.CSRMatrix) (*mat.Dense, error) {
	if err := checkMatrix(m); err != nil {
		return nil, err
	}

	k := f.width
	vocab := m.Cols
	docs := m.Rows
	alpha := 1.0 / float64(k)
	eta := 1.0 / float64(k)

	// lambda init: Gamma(100, 1/100) draws from the seeded source.
	gammaDist := distuv.Gamma{Alpha: 100, Beta: 100, Src: exprand.NewSource(uint64(f.seed))}
	lambda := make([][]float64, k)
	for kk := range lambda {
		lambda[kk] = make([]float64, vocab)
		for w := range lambda[kk] {
			lambda[kk][w] = gammaDist.Rand()
		}
	}
	expElogbeta := make([][]float64, k)
	for kk := range expElogbeta {
		expElogbeta[kk] = make([]float64, vocab)
	}
	updateExpElogbeta(lambda, expElogbeta)

	sstats := make([][]float64, k)
	for kk := range sstats {
		sstats[kk] = make([]float64, vocab)
	}

	update := 0
	for pass := 0; pass < ldaPasses; pass++ {
		for start := 0; start < docs; start += ldaBatchSize {
			end := start + ldaBatchSize
			if end > docs {
				end = docs
			}
			for kk := range sstats {
				for w := range sstats[kk] {
					sstats[kk][w] = 0
				}
			}
			for d := start; d < end; d++ {
				cols, vals := m.Row(d)
				f.inferDoc(cols, vals, expElogbeta, alpha, sstats)
			}
			// sstats currently holds sum_d expElogtheta_dk * cts_dw/phinorm_dw;
			// finish the expected count with the elementwise expElogbeta factor.
			for kk := range sstats {
				for w := range sstats[kk] {
					sstats[kk][w] *= expElogbeta[kk][w]
				}
			}
			rho := math.Pow(ldaOffset+float64(update), -ldaDecay)
			scale := float64(docs) / float64(end-start)
			for kk := range lambda {
				for w := range lambda[kk] {
					lambda[kk][w] = (1-rho)*lambda[kk][w] + rho*(eta+scale*sstats[kk][w])
				}
			}
			updateExpElogbeta(lambda, expElogbeta)
			update++
		}
	}

	// Final pass: infer the topic mixture of every document under the
	// fitted topics and normalize to a distribution.
	out := mat.NewDense(docs, k, nil)
	for d := 0; d < docs; d++ {
		cols, vals := m.Row(d)
		gamma := f.inferDoc(cols, vals, expElogbeta, alpha, nil)
		var sum float64
		for _, g := range gamma {
			sum += g
		}
		for kk, g := range gamma {
			out.Set(d, kk, g/sum)
		}
	}
	return out, nil
}

// inferDoc runs the document E-step: iterate the variational posterior
// gamma to convergence for one document. When sstats is non-nil the
// document's sufficient statistics are accumulated into it.
func (f *latentDirichlet) inferDoc(cols []int, cnts []float32, expElogbeta [][]float64, alpha float64, sstats [][]float64) []float64 {
	k := f.width
	gamma := make([]float64, k)
	expElogtheta := make([]float64, k)
	for kk := range gamma {
		gamma[kk] = 1
	}
	phinorm := make([]float64, len(cols))

	for it := 0; it < ldaEStepIter; it++ {
		expDirichletExpectation(gamma, expElogtheta)
		for w := range cols {
			var p float64
			for kk := 0; kk < k; kk++ {
				p += expElogtheta[kk] * expElogbeta[kk][cols[w]]
			}
			phinorm[w] = p + 1e-100
		}
		var meanchange float64
		for kk := 0; kk < k; kk++ {
			var dot float64
			for w := range cols {
				dot += float64(cnts[w]) / phinorm[w] * expElogbeta[kk][cols[w]]
			}
			next := alpha + expElogtheta[kk]*dot
			meanchange += math.Abs(next - gamma[kk])
			gamma[kk] = next
		}
		if meanchange/float64(k) < ldaMeanTol {
			break
		}
	}

	if sstats != nil {
		expDirichletExpectation(gamma, expElogtheta)
		for w := range cols {
			var p float64
			for kk := 0; kk < k; kk++ {
				p += expElogtheta[kk] * expElogbeta[kk][cols[w]]
			}
			p += 1e-100
			for kk := 0; kk < k; kk++ {
				sstats[kk][cols[w]] += expElogtheta[kk] * float64(cnts[w]) / p
			}
		}
	}
	return gamma
}

// updateExpElogbeta refreshes exp(E[log beta]) from lambda row-wise.
func updateExpElogbeta(lambda, expElogbeta [][]float64) {
	for kk := range lambda {
		var sum float64
		for _, v := range lambda[kk] {
			sum += v
		}
		dgSum := mathext.Digamma(sum)
		for w, v := range lambda[kk] {
			expElogbeta[kk][w] = math.Exp(mathext.Digamma(v) - dgSum)
		}
	}
}

// expDirichletExpectation writes exp(digamma(g) - digamma(sum g)) into out.
func expDirichletExpectation(gamma, out []float64) {
	var sum float64
	for _, g := range gamma {
		sum += g
	}
	dgSum := mathext.Digamma(sum)
	for i, g := range gamma {
		out[i] = math.Exp(mathext.Digamma(g) - dgSum)
	}
}
