package engine

import "github.com/mesh-intelligence/seqmine/pkg/types"

// ItemSet is the set of distinct items appearing in one transaction.
// It backs the presence prefilter: a candidate containing an item absent
// from the set cannot occur contiguously in that transaction, so the
// matcher call can be skipped. Skipping never changes support counts.
type ItemSet map[types.Item]struct{}

// NewItemSet collects the distinct items of a sequence.
func NewItemSet(seq types.Sequence) ItemSet {
	set := make(ItemSet, len(seq))
	for _, item := range seq {
		set[item] = struct{}{}
	}
	return set
}

// HasAll reports whether every item of needle is present in the set.
func (s ItemSet) HasAll(needle types.Sequence) bool {
	for _, item := range needle {
		if _, ok := s[item]; !ok {
			return false
		}
	}
	return true
}

// BuildItemSets precomputes one ItemSet per transaction. The cost is
// O(total items) once, amortized across all candidates of a level.
func BuildItemSets(transactions []types.Sequence) []ItemSet {
	sets := make([]ItemSet, len(transactions))
	for i, tx := range transactions {
		sets[i] = NewItemSet(tx)
	}
	return sets
}
