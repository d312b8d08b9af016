package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/coocvec/core"
	"github.com/poiesic/coocvec/corpus"
)

func compositeSplits(t *testing.T) (*core.Dataset, *core.Dataset) {
	t.Helper()
	// Key (ch, os): key (1,1) occurs 4 times across the splits, key
	// (2,1) occurs twice and key (1,2) once; with threshold 3 only
	// (1,1) survives.
	train := core.NewDataset()
	require.NoError(t, train.AddColumn("ch", []int{1, 1, 2, 1, 1}))
	require.NoError(t, train.AddColumn("os", []int{1, 1, 1, 2, 1}))
	require.NoError(t, train.AddColumn("app", []int{3, 4, 5, 6, 3}))

	test := core.NewDataset()
	require.NoError(t, test.AddColumn("ch", []int{1, 2}))
	require.NoError(t, test.AddColumn("os", []int{1, 1}))
	require.NoError(t, test.AddColumn("app", []int{4, 5}))
	return train, test
}

func testComposite(t *testing.T) *CompositeLatent {
	t.Helper()
	spec, err := corpus.NewKeySpec(
		corpus.KeyField{Column: "ch", Bits: 4},
		corpus.KeyField{Column: "os", Bits: 4},
	)
	require.NoError(t, err)
	return NewCompositeLatent("composite_test", spec, "app", 4,
		WithColumns([]string{"ch", "os", "app"}))
}

func TestCompositeLatent_Transform(t *testing.T) {
	train, test := compositeSplits(t)
	c := testComposite(t)

	trainFrame, testFrame, err := c.Transform(train, test)
	require.NoError(t, err)

	t.Run("shapes and names", func(t *testing.T) {
		assert.Equal(t, 5, trainFrame.Rows())
		assert.Equal(t, 2, testFrame.Rows())
		require.Equal(t, 4, trainFrame.Width())
		assert.Equal(t, "composite_test_0", trainFrame.Columns()[0])
		assert.Equal(t, "composite_test_3", trainFrame.Columns()[3])
	})

	t.Run("filtered keys receive zero vectors", func(t *testing.T) {
		// Train rows 2 (key 2,1) and 3 (key 1,2) are below threshold.
		for _, r := range []int{2, 3} {
			for j := 0; j < 4; j++ {
				assert.Zero(t, trainFrame.At(r, j), "row %d col %d", r, j)
			}
		}
		// Test row 1 shares the filtered key (2,1).
		for j := 0; j < 4; j++ {
			assert.Zero(t, testFrame.At(1, j), "col %d", j)
		}
	})

	t.Run("surviving keys share the latent row", func(t *testing.T) {
		// Train rows 0, 1, 4 and test row 0 all map to key (1,1).
		assert.Equal(t, trainFrame.Row(0), trainFrame.Row(1))
		assert.Equal(t, trainFrame.Row(0), trainFrame.Row(4))
		assert.Equal(t, trainFrame.Row(0), testFrame.Row(0))

		// The surviving key's vector is a topic distribution, not zeros.
		var sum float64
		for j := 0; j < 4; j++ {
			sum += float64(trainFrame.At(0, j))
		}
		assert.InDelta(t, 1.0, sum, 1e-6)
	})
}

func TestCompositeLatent_Determinism(t *testing.T) {
	train, test := compositeSplits(t)

	a, _, err := testComposite(t).Transform(train, test)
	require.NoError(t, err)
	b, _, err := testComposite(t).Transform(train, test)
	require.NoError(t, err)
	assert.Equal(t, a.Data(), b.Data())
}

func TestCompositeLatent_KeyOverflowRejected(t *testing.T) {
	train, test := compositeSplits(t)
	spec, err := corpus.NewKeySpec(
		corpus.KeyField{Column: "ch", Bits: 1},
		corpus.KeyField{Column: "os", Bits: 4},
	)
	require.NoError(t, err)

	c := NewCompositeLatent("composite_test", spec, "app", 2,
		WithColumns([]string{"ch", "os", "app"}))
	_, _, err = c.Transform(train, test)
	assert.ErrorIs(t, err, corpus.ErrKeyOverflow)
}

func TestNewCompositeLDA30(t *testing.T) {
	c := NewCompositeLDA30()
	assert.Equal(t, "composite_lda_30", c.Name())
	assert.Equal(t, DefaultMinKeyCount, c.minCount)
}
