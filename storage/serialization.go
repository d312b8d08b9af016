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


package storage

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"

	"github.com/poiesic/coocvec/core"
)

// MarshalID serializes a dataset fingerprint to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, varint.Uint64.Size(uint64(id)))
	varint.Uint64.Marshal(uint64(id), buf)
	return buf
}

// UnmarshalID deserializes a dataset fingerprint from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	v, _, err := varint.Uint64.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCorruptFrame, err)
	}
	return core.ID(v), nil
}

// MarshalFeatureFrame serializes a frame to bytes. Layout is the MUS
// encoding of the column name list followed by the row-major value
// slice.
func MarshalFeatureFrame(frame *core.FeatureFrame) []byte {
	columns := frame.Columns()
	data := frame.Data()

	size := varint.PositiveInt.Size(len(columns))
	for _, name := range columns {
		size += ord.String.Size(name)
	}
	size += varint.PositiveInt.Size(len(data))
	for _, v := range data {
		size += raw.Float32.Size(v)
	}

	buf := make([]byte, size)
	n := varint.PositiveInt.Marshal(len(columns), buf)
	for _, name := range columns {
		n += ord.String.Marshal(name, buf[n:])
	}
	n += varint.PositiveInt.Marshal(len(data), buf[n:])
	for _, v := range data {
		n += raw.Float32.Marshal(v, buf[n:])
	}
	return buf
}

// UnmarshalFeatureFrame deserializes a frame from bytes.
func UnmarshalFeatureFrame(data []byte) (*core.FeatureFrame, error) {
	numCols, n, err := varint.PositiveInt.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: column count: %v", ErrCorruptFrame, err)
	}
	columns := make([]string, numCols)
	for i := range columns {
		name, m, err := ord.String.Unmarshal(data[n:])
		if err != nil {
			return nil, fmt.Errorf("%w: column name %d: %v", ErrCorruptFrame, i, err)
		}
		columns[i] = name
		n += m
	}

	numValues, m, err := varint.PositiveInt.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: value count: %v", ErrCorruptFrame, err)
	}
	n += m
	values := make([]float32, numValues)
	for i := range values {
		v, m, err := raw.Float32.Unmarshal(data[n:])
		if err != nil {
			return nil, fmt.Errorf("%w: value %d: %v", ErrCorruptFrame, i, err)
		}
		values[i] = v
		n += m
	}

	frame, err := core.FeatureFrameFromData(columns, values)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptFrame, err)
	}
	return frame, nil
}
