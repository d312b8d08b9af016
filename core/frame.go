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


package core

import "fmt"

// FeatureFrame is a dense row-major float32 feature table with named
// columns. Frames are created once per transformer invocation and owned
// exclusively by the caller; every value is copied, never aliased, from
// the latent matrices it was assembled from.
type FeatureFrame struct {
	columns []string
	data    []float32
	rows    int
}

// NewFeatureFrame creates a zero-filled frame with the given column names
// and row count.
func NewFeatureFrame(columns []string, rows int) *FeatureFrame {
	return &FeatureFrame{
		columns: columns,
		data:    make([]float32, rows*len(columns)),
		rows:    rows,
	}
}

// FeatureFrameFromData reconstructs a frame from its flat row-major data,
// as read back from storage. The data length must be an exact multiple of
// the column count.
func FeatureFrameFromData(columns []string, data []float32) (*FeatureFrame, error) {
	width := len(columns)
	if width == 0 {
		if len(data) != 0 {
			return nil, fmt.Errorf("%w: data without columns", ErrInvalidFrame)
		}
		return &FeatureFrame{}, nil
	}
	if len(data)%width != 0 {
		return nil, fmt.Errorf("%w: %d values do not fill rows of width %d",
			ErrInvalidFrame, len(data), width)
	}
	return &FeatureFrame{columns: columns, data: data, rows: len(data) / width}, nil
}

// Rows returns the number of rows.
func (f *FeatureFrame) Rows() int {
	return f.rows
}

// Width returns the number of columns.
func (f *FeatureFrame) Width() int {
	return len(f.columns)
}

// Columns returns the column names in order.
func (f *FeatureFrame) Columns() []string {
	return f.columns
}

// Row returns a mutable view of row i. Assemblers copy latent vectors
// into these slices; after assembly callers should treat rows as
// read-only.
func (f *FeatureFrame) Row(i int) []float32 {
	w := len(f.columns)
	return f.data[i*w : (i+1)*w]
}

// At returns the value at row i, column j.
func (f *FeatureFrame) At(i, j int) float32 {
	return f.data[i*len(f.columns)+j]
}

// Data returns the flat row-major backing slice, used by serialization.
func (f *FeatureFrame) Data() []float32 {
	return f.data
}
