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

import (
	"encoding/binary"
	"fmt"
	"hash"

	"github.com/go-crypt/x/blake2b"
)

// ID is a 64-bit content fingerprint used to address datasets and the
// feature frames derived from them.
type ID uint64

// CategoricalColumns is the fixed categorical schema consumed by the
// shipped feature transformers. Every column holds label-encoded,
// non-negative integer values.
var CategoricalColumns = []string{"ip", "app", "os", "device", "channel"}

// Dataset is a column-accessible table of label-encoded integer columns.
// All columns have the same length and column order is preserved from
// insertion. Datasets are read-only once populated; transformers never
// mutate them.
type Dataset struct {
	names  []string
	cols   map[string][]int
	length int
}

// NewDataset creates an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{cols: make(map[string][]int)}
}

// AddColumn appends a named column. The first column fixes the row count;
// subsequent columns must match it.
func (d *Dataset) AddColumn(name string, values []int) error {
	if _, ok := d.cols[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateColumn, name)
	}
	if len(d.names) > 0 && len(values) != d.length {
		return fmt.Errorf("%w: column %s has %d rows, dataset has %d",
			ErrLengthMismatch, name, len(values), d.length)
	}
	d.names = append(d.names, name)
	d.cols[name] = values
	d.length = len(values)
	return nil
}

// Column returns the values of a named column.
func (d *Dataset) Column(name string) ([]int, error) {
	col, ok := d.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
	}
	return col, nil
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return d.length
}

// Names returns the column names in insertion order.
func (d *Dataset) Names() []string {
	return d.names
}

// Max returns the maximum value of a named column, or -1 for an empty
// column.
func (d *Dataset) Max(name string) (int, error) {
	col, err := d.Column(name)
	if err != nil {
		return 0, err
	}
	max := -1
	for _, v := range col {
		if v > max {
			max = v
		}
	}
	return max, nil
}

// Concat stacks two datasets with identical schemas, a's rows first.
// Transformers fit on the concatenation of the train and test splits and
// broadcast onto each split separately.
func Concat(a, b *Dataset) (*Dataset, error) {
	if len(a.names) != len(b.names) {
		return nil, fmt.Errorf("%w: %d columns vs %d", ErrSchemaMismatch, len(a.names), len(b.names))
	}
	out := NewDataset()
	for _, name := range a.names {
		bcol, ok := b.cols[name]
		if !ok {
			return nil, fmt.Errorf("%w: column %s missing from second dataset", ErrSchemaMismatch, name)
		}
		merged := make([]int, 0, a.length+b.length)
		merged = append(merged, a.cols[name]...)
		merged = append(merged, bcol...)
		if err := out.AddColumn(name, merged); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Fingerprint generates a deterministic ID from the dataset's schema and
// contents using BLAKE2b hashing. Identical datasets produce identical
// fingerprints, which makes the fingerprint usable as a storage key.
func Fingerprint(d *Dataset) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	writeDataset(h, d)
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// FingerprintPair generates a deterministic ID from an ordered
// train/test dataset pair. Frames are fitted on the concatenation of
// both splits, so anything derived from a fit must be keyed by the
// whole pair, not a single split.
func FingerprintPair(train, test *Dataset) ID {
	h, _ := blake2b.New(8, nil)
	writeDataset(h, train)
	h.Write([]byte{0xff})
	writeDataset(h, test)
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// writeDataset streams an injective encoding of the dataset: per column
// the NUL-terminated name, the uvarint value count, then the uvarint
// values. The count keeps one column's value stream from bleeding into
// the next column's name byte-wise.
func writeDataset(h hash.Hash, d *Dataset) {
	var buf [binary.MaxVarintLen64]byte
	for _, name := range d.names {
		h.Write([]byte(name))
		h.Write([]byte{0})
		col := d.cols[name]
		n := binary.PutUvarint(buf[:], uint64(len(col)))
		h.Write(buf[:n])
		for _, v := range col {
			n := binary.PutUvarint(buf[:], uint64(v))
			h.Write(buf[:n])
		}
	}
}
