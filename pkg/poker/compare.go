package poker

import "handrank-server/pkg/deck"

// Compare orders two results
// It returns 1 if a beats b, -1 if b beats a, and 0 if they tie. The category is
// compared first, then the primary ranks in order, then the kickers. Suits never
// break a tie.
func Compare(a, b Result) int {
	switch {
	case a.Category > b.Category:
		return 1
	case a.Category < b.Category:
		return -1
	}

	// the ace of a wheel is last, so it only ever meets another wheel's ace
	if cmp := compareRanks(a.Primary, b.Primary); cmp != 0 {
		return cmp
	}

	return compareRanks(a.Kickers, b.Kickers)
}

// Beats returns true if the result is better than other
func (r Result) Beats(other Result) bool {
	return Compare(r, other) > 0
}

// Ties returns true if neither result is better than the other
func (r Result) Ties(other Result) bool {
	return Compare(r, other) == 0
}

// compareRanks compares cards position by position on rank
func compareRanks(a, b []deck.Card) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	for i := 0; i < n; i++ {
		if cmp := a[i].Compare(b[i]); cmp != 0 {
			return cmp
		}
	}

	switch {
	case len(a) > len(b):
		return 1
	case len(a) < len(b):
		return -1
	default:
		return 0
	}
}
