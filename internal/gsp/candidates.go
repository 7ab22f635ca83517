package gsp

import "github.com/mesh-intelligence/seqmine/pkg/types"

// joinCandidates generates the next level's candidates from the frequent
// patterns of the previous level. Pattern p1 joins p2 when p1 without its
// first item equals p2 without its last item; the join is p1 extended by
// p2's last item. A singleton never joins itself, so no candidate repeats
// an item by self-extension at level two.
func joinCandidates(prev types.Level) []types.Sequence {
	seqs := prev.Sequences()
	out := make([]types.Sequence, 0, len(seqs))
	for _, p1 := range seqs {
		for _, p2 := range seqs {
			if len(p1) == 1 && p1.Equal(p2) {
				continue
			}
			if !p1[1:].Equal(p2[:len(p2)-1]) {
				continue
			}
			joined := make(types.Sequence, 0, len(p1)+1)
			joined = append(joined, p1...)
			joined = append(joined, p2[len(p2)-1])
			out = append(out, joined)
		}
	}
	return out
}
