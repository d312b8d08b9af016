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

	"gonum.org/v1/gonum/mat"
)

// CSRMatrix is a compressed sparse row matrix of float32 values.
// Values are float32 for memory economy: document-term matrices over
// millions of category values dominate peak memory.
type CSRMatrix struct {
	Rows, Cols int
	RowPtr     []int // len Rows+1; row i spans RowPtr[i]:RowPtr[i+1]
	ColIdx     []int
	Values     []float32
}

// NNZ returns the number of stored entries.
func (m *CSRMatrix) NNZ() int {
	return len(m.Values)
}

// Row returns the column indices and values of row i as views into the
// backing arrays.
func (m *CSRMatrix) Row(i int) ([]int, []float32) {
	start, end := m.RowPtr[i], m.RowPtr[i+1]
	return m.ColIdx[start:end], m.Values[start:end]
}

// At returns the value at (i, j), zero if the entry is not stored.
func (m *CSRMatrix) At(i, j int) float32 {
	cols, vals := m.Row(i)
	for k, c := range cols {
		if c == j {
			return vals[k]
		}
	}
	return 0
}

// Dense materializes the matrix as a gonum dense matrix for the
// factorization algorithms that need one.
func (m *CSRMatrix) Dense() *mat.Dense {
	d := mat.NewDense(m.Rows, m.Cols, nil)
	for i := 0; i < m.Rows; i++ {
		cols, vals := m.Row(i)
		for k, c := range cols {
			d.Set(i, c, float64(vals[k]))
		}
	}
	return d
}

// ScaleColumns multiplies every stored value by a per-column weight.
func (m *CSRMatrix) ScaleColumns(weights []float64) {
	for k, c := range m.ColIdx {
		m.Values[k] = float32(float64(m.Values[k]) * weights[c])
	}
}

// NormalizeRows scales each row to unit L2 norm. All-zero rows are left
// untouched.
func (m *CSRMatrix) NormalizeRows() {
	for i := 0; i < m.Rows; i++ {
		start, end := m.RowPtr[i], m.RowPtr[i+1]
		var sum float64
		for _, v := range m.Values[start:end] {
			sum += float64(v) * float64(v)
		}
		if sum == 0 {
			continue
		}
		norm := math.Sqrt(sum)
		for k := start; k < end; k++ {
			m.Values[k] = float32(float64(m.Values[k]) / norm)
		}
	}
}

// documentFrequencies counts, per column, the number of rows holding a
// stored entry in that column.
func (m *CSRMatrix) documentFrequencies() []int {
	df := make([]int, m.Cols)
	for i := 0; i < m.Rows; i++ {
		cols, _ := m.Row(i)
		for _, c := range cols {
			df[c]++
		}
	}
	return df
}
