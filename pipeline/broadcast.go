package pipeline

import (
	"fmt"

	"github.com/poiesic/coocvec/core"
	"github.com/poiesic/coocvec/corpus"
)

// assemblePairFrame broadcasts per-pair latent matrices onto a split.
// Each row's col1 value is a direct index into that pair's latent matrix
// (col1 values are dense zero-based ids; an out-of-range value is
// undefined behavior inherited from upstream encoding). The latent row
// is copied, never aliased, into the frame's column slice. Columns are
// named {name}-{col1}-{col2}-{j}.
func assemblePairFrame(ds *core.Dataset, name string, pairs []Pair, latents [][][]float32, width int) (*core.FeatureFrame, error) {
	columns := make([]string, 0, len(pairs)*width)
	for _, p := range pairs {
		for j := 0; j < width; j++ {
			columns = append(columns, fmt.Sprintf("%s-%s-%s-%d", name, p.Col1, p.Col2, j))
		}
	}

	frame := core.NewFeatureFrame(columns, ds.Len())
	for i, p := range pairs {
		col1, err := ds.Column(p.Col1)
		if err != nil {
			return nil, err
		}
		offset := i * width
		latent := latents[i]
		for r, v := range col1 {
			copy(frame.Row(r)[offset:offset+width], latent[v])
		}
	}
	return frame, nil
}

// assembleSingleFrame copies one latent row per record into a frame with
// columns named {name}_{i}. rowOffset selects the split's slice of the
// latent matrix fitted on the concatenated data.
func assembleSingleFrame(name string, latent [][]float32, rowOffset, rows, width int) *core.FeatureFrame {
	columns := make([]string, width)
	for i := 0; i < width; i++ {
		columns[i] = fmt.Sprintf("%s_%d", name, i)
	}
	frame := core.NewFeatureFrame(columns, rows)
	for r := 0; r < rows; r++ {
		copy(frame.Row(r), latent[rowOffset+r])
	}
	return frame
}

// assembleCompositeFrame broadcasts latent rows through the filtered
// key map. Rows whose composite key was dropped by the frequency filter
// keep an all-zero feature vector.
func assembleCompositeFrame(ds *core.Dataset, name string, spec *corpus.KeySpec, keyToID map[uint64]int, latent [][]float32, width int) (*core.FeatureFrame, error) {
	columns := make([]string, width)
	for i := 0; i < width; i++ {
		columns[i] = fmt.Sprintf("%s_%d", name, i)
	}

	keyCols := make([][]int, 0, len(spec.Columns()))
	for _, colName := range spec.Columns() {
		col, err := ds.Column(colName)
		if err != nil {
			return nil, err
		}
		keyCols = append(keyCols, col)
	}

	frame := core.NewFeatureFrame(columns, ds.Len())
	for r := 0; r < ds.Len(); r++ {
		key, err := spec.PackRow(keyCols, r)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", r, err)
		}
		if id, ok := keyToID[key]; ok {
			copy(frame.Row(r), latent[id])
		}
	}
	return frame, nil
}
