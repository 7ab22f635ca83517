// Package engine implements the support-counting core: the contiguous
// subsequence matcher, the presence prefilter, and the parallel support
// aggregator. The engine is pure; it reads its inputs, shares no mutable
// state between workers, and returns deterministic results.
package engine
