package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/coocvec/core"
)

func TestColumnPairs(t *testing.T) {
	t.Run("five columns yield twenty distinct ordered pairs", func(t *testing.T) {
		pairs := ColumnPairs(core.CategoricalColumns)
		require.Len(t, pairs, 20)

		seen := make(map[Pair]struct{})
		for _, p := range pairs {
			assert.NotEqual(t, p.Col1, p.Col2)
			_, dup := seen[p]
			assert.False(t, dup, "pair %v repeated", p)
			seen[p] = struct{}{}
		}
	})

	t.Run("both orderings present", func(t *testing.T) {
		pairs := ColumnPairs([]string{"a", "b"})
		assert.Equal(t, []Pair{{"a", "b"}, {"b", "a"}}, pairs)
	})

	t.Run("single column yields none", func(t *testing.T) {
		assert.Empty(t, ColumnPairs([]string{"a"}))
	})
}
