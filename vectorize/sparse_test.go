package vectorize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSRMatrix_Dense(t *testing.T) {
	m := &CSRMatrix{
		Rows:   2,
		Cols:   3,
		RowPtr: []int{0, 2, 3},
		ColIdx: []int{0, 2, 1},
		Values: []float32{1, 2, 3},
	}

	d := m.Dense()
	r, c := d.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	assert.Equal(t, 1.0, d.At(0, 0))
	assert.Equal(t, 0.0, d.At(0, 1))
	assert.Equal(t, 2.0, d.At(0, 2))
	assert.Equal(t, 3.0, d.At(1, 1))
}

func TestCSRMatrix_NormalizeRows_ZeroRow(t *testing.T) {
	m := &CSRMatrix{
		Rows:   2,
		Cols:   2,
		RowPtr: []int{0, 0, 2},
		ColIdx: []int{0, 1},
		Values: []float32{3, 4},
	}
	m.NormalizeRows()

	assert.InDelta(t, 0.6, float64(m.At(1, 0)), 1e-6)
	assert.InDelta(t, 0.8, float64(m.At(1, 1)), 1e-6)
	assert.Equal(t, 0, m.RowPtr[1]) // empty row untouched
}

func TestOneHot(t *testing.T) {
	t.Run("offset-stacked blocks", func(t *testing.T) {
		m, err := OneHot([][]int{{0, 1}, {2, 0}})
		require.NoError(t, err)

		require.Equal(t, 2, m.Rows)
		require.Equal(t, 5, m.Cols) // block widths 2 and 3
		assert.Equal(t, float32(1), m.At(0, 0))
		assert.Equal(t, float32(1), m.At(0, 4)) // offset 2 + value 2
		assert.Equal(t, float32(1), m.At(1, 1))
		assert.Equal(t, float32(1), m.At(1, 2))
		assert.Equal(t, 4, m.NNZ())
	})

	t.Run("length mismatch rejected", func(t *testing.T) {
		_, err := OneHot([][]int{{0, 1}, {2}})
		assert.ErrorIs(t, err, ErrLengthMismatch)
	})

	t.Run("negative value rejected", func(t *testing.T) {
		_, err := OneHot([][]int{{0, -1}})
		assert.ErrorIs(t, err, ErrNegativeValue)
	})
}
