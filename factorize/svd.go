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

// truncatedSVD projects documents onto the top singular directions of the
// document-term matrix. The decomposition is deterministic, so no seed is
// consumed.
type truncatedSVD struct {
	width int
}

func (f *truncatedSVD) FitTransform(m *vectorize.CSRMatrix) (*mat.Dense, error) {
	if err := checkMatrix(m); err != nil {
		return nil, err
	}
	if f.width > m.Rows || f.width > m.Cols {
		return nil, fmt.Errorf("%w: width %d for %dx%d matrix",
			ErrWidthTooLarge, f.width, m.Rows, m.Cols)
	}

	var svd mat.SVD
	if ok := svd.Factorize(m.Dense(), mat.SVDThin); !ok {
		return nil, ErrSVDFailed
	}

	var u mat.Dense
	svd.UTo(&u)
	sigma := svd.Values(nil)

	// Latent rows are U scaled by the singular values, truncated to the
	// requested width.
	out := mat.NewDense(m.Rows, f.width, nil)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < f.width; j++ {
			out.Set(i, j, u.At(i, j)*sigma[j])
		}
	}
	return out, nil
}
