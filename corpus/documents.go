package corpus

import (
	"fmt"
	"strconv"
	"strings"
)

// BuildDocuments groups all col2 values by each distinct col1 value and
// renders one document per dense col1 value in [0, max(col1)].
//
// The result has exactly max(col1)+1 entries; a col1 value with zero
// occurrences yields the empty string, which the vectorizer tolerates as
// an all-zero row. The function is pure: inputs are never mutated.
func BuildDocuments(col1, col2 []int) ([]string, error) {
	if len(col1) != len(col2) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(col1), len(col2))
	}

	size := 0
	for _, v := range col1 {
		if v+1 > size {
			size = v + 1
		}
	}

	groups := make([][]int, size)
	for i, v := range col1 {
		groups[v] = append(groups[v], col2[i])
	}

	return joinDocuments(groups), nil
}

// joinDocuments renders token lists as space-joined stringified integers.
func joinDocuments(groups [][]int) []string {
	docs := make([]string, len(groups))
	var sb strings.Builder
	for i, tokens := range groups {
		sb.Reset()
		for j, tok := range tokens {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(tok))
		}
		docs[i] = sb.String()
	}
	return docs
}
