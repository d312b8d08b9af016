package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDocuments(t *testing.T) {
	t.Run("groups second column by first", func(t *testing.T) {
		docs, err := BuildDocuments([]int{0, 1, 0, 2}, []int{5, 6, 7, 8})
		require.NoError(t, err)
		assert.Equal(t, []string{"5 7", "6", "8"}, docs)
	})

	t.Run("document count is max value plus one", func(t *testing.T) {
		docs, err := BuildDocuments([]int{4}, []int{9})
		require.NoError(t, err)
		require.Len(t, docs, 5)
	})

	t.Run("unobserved values yield empty documents", func(t *testing.T) {
		docs, err := BuildDocuments([]int{0, 3}, []int{1, 2})
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "", "", "2"}, docs)
	})

	t.Run("empty input yields no documents", func(t *testing.T) {
		docs, err := BuildDocuments(nil, nil)
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("length mismatch rejected", func(t *testing.T) {
		_, err := BuildDocuments([]int{0, 1}, []int{1})
		assert.ErrorIs(t, err, ErrLengthMismatch)
	})

	t.Run("input columns are not mutated", func(t *testing.T) {
		col1 := []int{1, 0}
		col2 := []int{3, 4}
		_, err := BuildDocuments(col1, col2)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 0}, col1)
		assert.Equal(t, []int{3, 4}, col2)
	})
}
