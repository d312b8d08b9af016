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


package corpus

import (
	"fmt"

	"github.com/poiesic/coocvec/core"
)

// KeyField allots a bit width to one categorical column inside a packed
// composite key.
type KeyField struct {
	Column string
	Bits   uint
}

// KeySpec describes how several categorical columns pack into a single
// uint64 grouping key. Fields occupy non-overlapping bit ranges from the
// low end upward, in declaration order.
type KeySpec struct {
	fields []KeyField
	shifts []uint
}

// NewKeySpec validates and builds a key spec. The total bit width must
// fit in 64 bits and every field needs a positive width.
func NewKeySpec(fields ...KeyField) (*KeySpec, error) {
	if len(fields) == 0 {
		return nil, ErrEmptyKeySpec
	}
	shifts := make([]uint, len(fields))
	var total uint
	for i, f := range fields {
		if f.Bits == 0 {
			return nil, fmt.Errorf("%w: field %s has zero width", ErrEmptyKeySpec, f.Column)
		}
		shifts[i] = total
		total += f.Bits
	}
	if total > 64 {
		return nil, fmt.Errorf("%w: %d bits", ErrKeySpecTooWide, total)
	}
	return &KeySpec{fields: fields, shifts: shifts}, nil
}

// DefaultKeySpec is the shipped (ip, device, os, channel) layout:
// channel in the low 10 bits, then os:10, device:24 and ip:20.
func DefaultKeySpec() *KeySpec {
	spec, err := NewKeySpec(
		KeyField{Column: "channel", Bits: 10},
		KeyField{Column: "os", Bits: 10},
		KeyField{Column: "device", Bits: 24},
		KeyField{Column: "ip", Bits: 20},
	)
	if err != nil {
		panic(err) // static layout, cannot fail
	}
	return spec
}

// Columns returns the key column names in field order.
func (s *KeySpec) Columns() []string {
	cols := make([]string, len(s.fields))
	for i, f := range s.fields {
		cols[i] = f.Column
	}
	return cols
}

// Pack combines one value per field into the composite key. A value that
// does not fit its field's bit width is rejected: letting it through
// would merge distinct key tuples into one embedding.
func (s *KeySpec) Pack(values []int) (uint64, error) {
	if len(values) != len(s.fields) {
		return 0, fmt.Errorf("%w: got %d values for %d fields", ErrLengthMismatch, len(values), len(s.fields))
	}
	var key uint64
	for i, v := range values {
		f := s.fields[i]
		if v < 0 || uint64(v) >= 1<<f.Bits {
			return 0, fmt.Errorf("%w: column %s value %d exceeds %d bits", ErrKeyOverflow, f.Column, v, f.Bits)
		}
		key |= uint64(v) << s.shifts[i]
	}
	return key, nil
}

// CompositeCorpus is the output of composite-key document construction:
// one document per surviving key, and the key to dense-id map used to
// broadcast latent rows back onto records.
type CompositeCorpus struct {
	Documents []string
	KeyToID   map[uint64]int
}

// BuildCompositeDocuments groups the target column's values by packed
// composite key. Keys receive dense ids in first-seen order; after
// accumulation, keys with fewer than minCount tokens are dropped and the
// survivors renumbered contiguously from zero, preserving relative order.
func BuildCompositeDocuments(ds *core.Dataset, spec *KeySpec, target string, minCount int) (*CompositeCorpus, error) {
	keyCols := make([][]int, len(spec.fields))
	for i, f := range spec.fields {
		col, err := ds.Column(f.Column)
		if err != nil {
			return nil, err
		}
		keyCols[i] = col
	}
	targetCol, err := ds.Column(target)
	if err != nil {
		return nil, err
	}

	keyToID := make(map[uint64]int)
	keyOrder := make([]uint64, 0)
	tokens := make([][]int, 0)

	packed := make([]int, len(spec.fields))
	for row := 0; row < ds.Len(); row++ {
		for i := range keyCols {
			packed[i] = keyCols[i][row]
		}
		key, err := spec.Pack(packed)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		id, ok := keyToID[key]
		if !ok {
			id = len(keyToID)
			keyToID[key] = id
			keyOrder = append(keyOrder, key)
			tokens = append(tokens, nil)
		}
		tokens[id] = append(tokens[id], targetCol[row])
	}

	// Drop low-frequency keys and renumber contiguously.
	kept := make([][]int, 0, len(tokens))
	keptIDs := make(map[uint64]int, len(keyToID))
	for _, key := range keyOrder {
		id := keyToID[key]
		if len(tokens[id]) >= minCount {
			keptIDs[key] = len(kept)
			kept = append(kept, tokens[id])
		}
	}

	return &CompositeCorpus{
		Documents: joinDocuments(kept),
		KeyToID:   keptIDs,
	}, nil
}

// PackRow packs the key columns of one dataset row. Broadcast uses it to
// look rows back up in a CompositeCorpus key map.
func (s *KeySpec) PackRow(cols [][]int, row int) (uint64, error) {
	values := make([]int, len(cols))
	for i := range cols {
		values[i] = cols[i][row]
	}
	return s.Pack(values)
}
