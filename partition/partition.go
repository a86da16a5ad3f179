/*
Package partition splits the linear block index space into contiguous ranges,
one per worker goroutine or worker process.
*/
package partition

import (
	"fmt"
	"sort"
)

// Range is a half-open span [Start, End) of block indices.
type Range struct {
	Start, End int
}

// Len returns the number of block indices in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Contains returns true if the block index is within the range.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Plan divides blockCount indices into workers contiguous, ordered, disjoint ranges
// whose union is [0, blockCount).  Each range gets blockCount/workers indices and the
// last range absorbs the remainder.  If there are more workers than blocks, all but
// the last range are empty.
func Plan(blockCount, workers int) ([]Range, error) {
	if workers < 1 {
		return nil, fmt.Errorf("partition plan needs at least one worker, got %d", workers)
	}
	if blockCount < 0 {
		return nil, fmt.Errorf("partition plan needs non-negative block count, got %d", blockCount)
	}
	per := blockCount / workers
	ranges := make([]Range, workers)
	for i := range ranges {
		ranges[i] = Range{Start: i * per, End: (i + 1) * per}
	}
	ranges[workers-1].End = blockCount
	return ranges, nil
}

// Owner returns the position within ranges of the range holding block index i,
// or -1 if no range does.  The ranges must be ordered as returned by Plan.
// Empty ranges never own an index.
func Owner(ranges []Range, i int) int {
	n := sort.Search(len(ranges), func(k int) bool {
		return ranges[k].End > i
	})
	if n < len(ranges) && ranges[n].Contains(i) {
		return n
	}
	return -1
}
