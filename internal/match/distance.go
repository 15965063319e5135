package match

import (
	"strings"
	"unicode"
)

// Distance returns the edit distance between a and b in runes: the minimum
// number of insertions, deletions and substitutions turning one into the
// other.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	// One row of the matrix, indexed by the shorter string.
	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			next := min(row[i]+1, row[i-1]+1, diag+cost)
			diag, row[i] = row[i], next
		}
	}

	return row[len(ra)]
}

// Similarity scores a and b between 0 (unrelated) and 1 (identical) after
// normalizing both: 1 - Distance / longest length.
func Similarity(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)

	longest := max(len([]rune(na)), len([]rune(nb)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Distance(na, nb))/float64(longest)
}

// Normalize folds an identifier for fuzzy comparison: lower case, with
// '_', '-' and spaces removed, so "orderID", "order_id" and "Order-Id" agree.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || r == '-' || r == ' ' {
			return -1
		}

		return unicode.ToLower(r)
	}, s)
}
