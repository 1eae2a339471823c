package mps

import (
	"container/heap"
	"strings"
)

// candidate is one not-yet-yielded path awaiting its turn in the ranking.
// devIndex and devPathCost are carried forward so that, once this candidate
// is popped and becomes the "current path", the deviation generator can
// resume scanning from devIndex instead of from 0, and can compute the next
// deviation's cost incrementally instead of re-summing the whole path.
type candidate struct {
	cost        float64
	seq         uint64
	path        []string
	devIndex    int
	devPathCost float64
}

// candidateBuffer is the engine's pending-candidate store: a min-heap
// ordered by (cost, seq) with whole-path deduplication, so the same path
// spliced together from two different deviation indices is only ever
// buffered once.
type candidateBuffer struct {
	heap    candidateHeap
	seen    map[string]struct{}
	counter uint64
}

func newCandidateBuffer() *candidateBuffer {
	return &candidateBuffer{seen: make(map[string]struct{})}
}

// push adds a candidate unless its path has already been pushed.
func (b *candidateBuffer) push(cost float64, path []string, devIndex int, devPathCost float64) {
	key := pathKey(path)
	if _, ok := b.seen[key]; ok {
		return
	}
	b.seen[key] = struct{}{}

	b.counter++
	heap.Push(&b.heap, &candidate{
		cost:        cost,
		seq:         b.counter,
		path:        path,
		devIndex:    devIndex,
		devPathCost: devPathCost,
	})
}

func (b *candidateBuffer) Len() int { return b.heap.Len() }

// pop removes and returns the least-cost candidate, breaking ties by
// insertion order (earlier-discovered candidates win, matching the
// reference ranking driver's FIFO tie-break within equal-cost batches).
func (b *candidateBuffer) pop() *candidate {
	return heap.Pop(&b.heap).(*candidate)
}

func pathKey(path []string) string {
	return strings.Join(path, "\x1f")
}

// candidateHeap is a min-heap of *candidate ordered by (cost, seq).
type candidateHeap []*candidate

func (h candidateHeap) Len() int { return len(h) }
func (h candidateHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}

	return h[i].seq < h[j].seq
}
func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap) Push(x interface{}) {
	*h = append(*h, x.(*candidate))
}
func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}
