package pipeline

// Pair is one ordered (col1, col2) co-occurrence job specification.
// col1 provides the grouping key, col2 the token stream.
type Pair struct {
	Col1, Col2 string
}

// ColumnPairs enumerates all ordered pairs with distinct members, in the
// order the column set lists them. Five columns yield twenty pairs.
func ColumnPairs(columns []string) []Pair {
	pairs := make([]Pair, 0, len(columns)*(len(columns)-1))
	for _, c1 := range columns {
		for _, c2 := range columns {
			if c1 != c2 {
				pairs = append(pairs, Pair{Col1: c1, Col2: c2})
			}
		}
	}
	return pairs
}
