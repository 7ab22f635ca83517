package engine

import (
	"github.com/sourcegraph/conc/iter"

	"github.com/mesh-intelligence/seqmine/pkg/types"
)

// Options controls how Supports evaluates candidates. Prefilter enables the
// presence pre-check; it is strictly a cost optimization and never changes
// the returned supports. Workers bounds the candidate worker pool; zero
// means one worker per available CPU.
type Options struct {
	Prefilter bool
	Workers   int
}

// Supports counts, for each candidate, the number of transactions containing
// it as a contiguous run, and returns the candidates whose count reaches
// minSupport, paired with their counts.
//
// Candidates are evaluated in parallel, one worker task per candidate; each
// task scans the transactions sequentially, so there is a single flat
// fork-join layer with no nested parallelism. Tasks share only the read-only
// inputs and own their counters, and the result order always matches the
// candidate input order regardless of pool size or scheduling.
func Supports(transactions, candidates []types.Sequence, minSupport int, opts Options) []types.Pattern {
	var sets []ItemSet
	if opts.Prefilter {
		sets = BuildItemSets(transactions)
	}

	mapper := iter.Mapper[types.Sequence, int]{MaxGoroutines: opts.Workers}
	counts := mapper.Map(candidates, func(cand *types.Sequence) int {
		count := 0
		for i, tx := range transactions {
			if sets != nil && !sets[i].HasAll(*cand) {
				continue
			}
			// One increment per transaction at most, regardless of how
			// many occurrences it holds.
			if Contains(tx, *cand) {
				count++
			}
		}
		return count
	})

	result := make([]types.Pattern, 0, len(candidates))
	for i, count := range counts {
		if count >= minSupport {
			result = append(result, types.Pattern{Items: candidates[i], Support: count})
		}
	}
	return result
}
