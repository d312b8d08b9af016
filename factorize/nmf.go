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
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/poiesic/coocvec/vectorize"
)

const (
	nmfIterations = 200
	nmfEpsilon    = 1e-9
)

// nonNegative factorizes X into W*H with non-negative factors using
// multiplicative Frobenius updates, and returns W as the latent matrix.
type nonNegative struct {
	width int
	seed  int64
}

func (f *nonNegative) FitTransform(m *vectorize.CSRMatrix) (*mat.Dense, error) {
	if err := checkMatrix(m); err != nil {
		return nil, err
	}
	if f.width > m.Rows || f.width > m.Cols {
		return nil, fmt.Errorf("%w: width %d for %dx%d matrix",
			ErrWidthTooLarge, f.width, m.Rows, m.Cols)
	}

	x := m.Dense()
	rows, cols := m.Rows, m.Cols
	k := f.width

	// Seeded random init scaled so W*H starts near the data magnitude.
	var total float64
	for _, v := range m.Values {
		total += float64(v)
	}
	avg := math.Sqrt(total / float64(rows*cols) / float64(k))
	rng := rand.New(rand.NewSource(f.seed))
	w := mat.NewDense(rows, k, nil)
	h := mat.NewDense(k, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < k; j++ {
			w.Set(i, j, avg*math.Abs(rng.NormFloat64()))
		}
	}
	for i := 0; i < k; i++ {
		for j := 0; j < cols; j++ {
			h.Set(i, j, avg*math.Abs(rng.NormFloat64()))
		}
	}

	// Update buffers are shaped once and reused across iterations.
	var (
		gram = mat.NewDense(k, k, nil)
		numH = mat.NewDense(k, cols, nil)
		denH = mat.NewDense(k, cols, nil)
		numW = mat.NewDense(rows, k, nil)
		denW = mat.NewDense(rows, k, nil)
	)
	for it := 0; it < nmfIterations; it++ {
		// H <- H * (W^T X) / (W^T W H)
		numH.Mul(w.T(), x)
		gram.Mul(w.T(), w)
		denH.Mul(gram, h)
		multiplicativeStep(h, numH, denH)

		// W <- W * (X H^T) / (W H H^T)
		numW.Mul(x, h.T())
		gram.Mul(h, h.T())
		denW.Mul(w, gram)
		multiplicativeStep(w, numW, denW)
	}
	return w, nil
}

// multiplicativeStep applies target *= num / (den + eps) elementwise.
func multiplicativeStep(target, num, den *mat.Dense) {
	r, c := target.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			target.Set(i, j, target.At(i, j)*num.At(i, j)/(den.At(i, j)+nmfEpsilon))
		}
	}
}
