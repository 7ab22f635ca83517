package engine

import "github.com/mesh-intelligence/seqmine/pkg/types"

// Contains reports whether needle occurs in hay as a contiguous run.
// An empty needle never matches. The first and last elements of each
// candidate window are compared before the full window, so mismatched
// anchors are rejected without scanning the window body. Worst case is
// O(len(hay) * len(needle)).
func Contains(hay, needle types.Sequence) bool {
	n := len(needle)
	if n == 0 {
		return false
	}
	m := len(hay)
	if n > m {
		return false
	}

	first := needle[0]
	last := needle[n-1]
	for i := 0; i+n <= m; i++ {
		if hay[i] != first {
			continue
		}
		if hay[i+n-1] != last {
			continue
		}
		if windowEqual(hay[i:i+n], needle) {
			return true
		}
	}
	return false
}

// windowEqual compares a hay window against the needle element by element.
// Lengths are equal by construction.
func windowEqual(window, needle types.Sequence) bool {
	for j := range needle {
		if window[j] != needle[j] {
			return false
		}
	}
	return true
}
