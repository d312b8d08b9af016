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


package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/poiesic/coocvec/core"
)

// ErrBadCell is returned when a selected cell is not a non-negative
// integer.
var ErrBadCell = errors.New("cell is not a non-negative integer")

// Load reads a CSV file with a header row and returns the selected
// columns as a dataset. Every selected cell must parse as a
// non-negative integer; the first offending line aborts the load.
func Load(path string, columns []string) (*core.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()
	return Read(f, columns)
}

// Read parses CSV content from r. See Load.
func Read(r io.Reader, columns []string) (*core.Dataset, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	// First line is expected to be a header.
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	indices := make([]int, len(columns))
	for i, name := range columns {
		indices[i] = -1
		for j, field := range header {
			if field == name {
				indices[i] = j
				break
			}
		}
		if indices[i] == -1 {
			return nil, fmt.Errorf("%w: %s", core.ErrMissingColumn, name)
		}
	}

	values := make([][]int, len(columns))
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading line %d: %w", line+1, err)
		}
		line++
		for i, idx := range indices {
			v, err := strconv.Atoi(record[idx])
			if err != nil || v < 0 {
				return nil, fmt.Errorf("%w: column %s line %d value %q",
					ErrBadCell, columns[i], line, record[idx])
			}
			values[i] = append(values[i], v)
		}
	}

	ds := core.NewDataset()
	for i, name := range columns {
		if err := ds.AddColumn(name, values[i]); err != nil {
			return nil, err
		}
	}
	return ds, nil
}
