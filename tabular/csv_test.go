package tabular

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/coocvec/core"
)

func TestRead(t *testing.T) {
	t.Run("selects and parses columns", func(t *testing.T) {
		in := "ip,app,click\n3,1,x\n0,2,y\n"
		ds, err := Read(strings.NewReader(in), []string{"ip", "app"})
		require.NoError(t, err)

		require.Equal(t, 2, ds.Len())
		ip, err := ds.Column("ip")
		require.NoError(t, err)
		assert.Equal(t, []int{3, 0}, ip)
		app, err := ds.Column("app")
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, app)

		// Unselected columns are not loaded.
		_, err = ds.Column("click")
		assert.ErrorIs(t, err, core.ErrMissingColumn)
	})

	t.Run("missing column in header", func(t *testing.T) {
		_, err := Read(strings.NewReader("ip,app\n1,2\n"), []string{"os"})
		assert.ErrorIs(t, err, core.ErrMissingColumn)
	})

	t.Run("non-integer cell", func(t *testing.T) {
		_, err := Read(strings.NewReader("ip\n1\nabc\n"), []string{"ip"})
		assert.ErrorIs(t, err, ErrBadCell)
		assert.Contains(t, err.Error(), "line 3")
	})

	t.Run("negative cell", func(t *testing.T) {
		_, err := Read(strings.NewReader("ip\n-4\n"), []string{"ip"})
		assert.ErrorIs(t, err, ErrBadCell)
	})

	t.Run("empty body yields empty dataset", func(t *testing.T) {
		ds, err := Read(strings.NewReader("ip,app\n"), []string{"ip"})
		require.NoError(t, err)
		assert.Equal(t, 0, ds.Len())
	})
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.TempDir()+"/nope.csv", []string{"ip"})
	assert.Error(t, err)
}
