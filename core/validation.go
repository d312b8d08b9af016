package core

import "fmt"

// ValidateDataset validates a dataset against the categorical contract
// required by the feature transformers.
//
// Validation rules:
//   - Every required column must be present
//   - Every value must be non-negative (label-encoded dense ids)
//
// NOT validated (inherited from upstream encoding):
//   - Density of the encoding: gaps in the value range only produce empty
//     co-occurrence documents
func ValidateDataset(d *Dataset, required []string) error {
	if d == nil {
		return fmt.Errorf("%w: dataset is nil", ErrSchemaMismatch)
	}
	for _, name := range required {
		col, err := d.Column(name)
		if err != nil {
			return err
		}
		for i, v := range col {
			if v < 0 {
				return fmt.Errorf("%w: column %s row %d holds %d", ErrNegativeValue, name, i, v)
			}
		}
	}
	return nil
}
