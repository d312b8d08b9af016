package vectorize

import "fmt"

// OneHot encodes several categorical columns into one offset-stacked
// sparse indicator matrix: each input column occupies its own block of
// max(column)+1 output columns, and every row stores exactly one entry
// per block. This is the sparse input for the single-pipeline
// factorization variants.
func OneHot(columns [][]int) (*CSRMatrix, error) {
	if len(columns) == 0 {
		return &CSRMatrix{RowPtr: []int{0}}, nil
	}
	rows := len(columns[0])
	offsets := make([]int, len(columns))
	total := 0
	for i, col := range columns {
		if len(col) != rows {
			return nil, fmt.Errorf("%w: column %d has %d rows, expected %d",
				ErrLengthMismatch, i, len(col), rows)
		}
		offsets[i] = total
		width := 0
		for j, v := range col {
			if v < 0 {
				return nil, fmt.Errorf("%w: column %d row %d holds %d", ErrNegativeValue, i, j, v)
			}
			if v+1 > width {
				width = v + 1
			}
		}
		total += width
	}

	m := &CSRMatrix{
		Rows:   rows,
		Cols:   total,
		RowPtr: make([]int, rows+1),
		ColIdx: make([]int, rows*len(columns)),
		Values: make([]float32, rows*len(columns)),
	}
	for i := 0; i < rows; i++ {
		base := i * len(columns)
		for c, col := range columns {
			m.ColIdx[base+c] = offsets[c] + col[i]
			m.Values[base+c] = 1
		}
		m.RowPtr[i+1] = base + len(columns)
	}
	return m, nil
}
