package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/coocvec/core"
)

// testSingle builds a single-pipeline transformer with a width small
// enough for synthetic data.
func testSingle(width int, tfidf bool) *SingleLatent {
	return &SingleLatent{
		name:     "single_test",
		tfidf:    tfidf,
		width:    width,
		settings: newSettings(WithColumns([]string{"a", "b"})),
	}
}

func singleSplits(t *testing.T) (*core.Dataset, *core.Dataset) {
	t.Helper()
	train := core.NewDataset()
	require.NoError(t, train.AddColumn("a", []int{0, 1, 2, 0, 1, 0}))
	require.NoError(t, train.AddColumn("b", []int{1, 0, 2, 1, 2, 1}))

	test := core.NewDataset()
	require.NoError(t, test.AddColumn("a", []int{2, 0}))
	require.NoError(t, test.AddColumn("b", []int{0, 1}))
	return train, test
}

func TestSingleLatent_Transform(t *testing.T) {
	train, test := singleSplits(t)

	for _, tfidf := range []bool{false, true} {
		name := "count"
		if tfidf {
			name = "tfidf"
		}
		t.Run(name, func(t *testing.T) {
			s := testSingle(2, tfidf)
			trainFrame, testFrame, err := s.Transform(train, test)
			require.NoError(t, err)

			assert.Equal(t, train.Len(), trainFrame.Rows())
			assert.Equal(t, test.Len(), testFrame.Rows())
			assert.Equal(t, []string{"single_test_0", "single_test_1"}, trainFrame.Columns())
			assert.Equal(t, trainFrame.Columns(), testFrame.Columns())
		})
	}
}

func TestSingleLatent_IdenticalRowsShareVectors(t *testing.T) {
	train, test := singleSplits(t)
	s := testSingle(2, false)

	trainFrame, testFrame, err := s.Transform(train, test)
	require.NoError(t, err)

	// Train rows 0, 3 and 5 are identical (a=0, b=1), as is test row 1.
	assert.Equal(t, trainFrame.Row(0), trainFrame.Row(3))
	assert.Equal(t, trainFrame.Row(0), trainFrame.Row(5))
	assert.Equal(t, trainFrame.Row(0), testFrame.Row(1))

	// Train row 2 (a=2, b=2) differs.
	assert.NotEqual(t, trainFrame.Row(0), trainFrame.Row(2))
}

func TestSingleLatent_Determinism(t *testing.T) {
	train, test := singleSplits(t)

	a, _, err := testSingle(2, true).Transform(train, test)
	require.NoError(t, err)
	b, _, err := testSingle(2, true).Transform(train, test)
	require.NoError(t, err)
	assert.Equal(t, a.Data(), b.Data())
}

func TestNewSingleVariants(t *testing.T) {
	assert.Equal(t, "single_svd_count", NewSingleSVDCount().Name())
	assert.Equal(t, "single_svd_tfidf", NewSingleSVDTFIDF().Name())
}
