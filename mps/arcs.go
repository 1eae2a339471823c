package mps

import (
	"sort"

	"github.com/katalvlaran/ksp/core"
)

// arcEntry is one out-neighbor of a tail node, annotated with its reduced
// cost toward target: dist[w] - dist[u] + weight(u,w). Reduced cost is
// always non-negative when w is on a shortest path and never decreases as
// arcs are enumerated in the order built by newSortedArcs, which is what
// lets the deviation generator treat "next arc in this cache" as "next-best
// detour" without re-sorting.
type arcEntry struct {
	head        string
	reducedCost float64
}

// sortedArcs is the per-tail-node cache described in SPEC_FULL.md §4.2: the
// out-neighbors of one node u, sorted by ascending reduced cost, with the
// entry for u's own shortest-path successor forced to index 0 regardless of
// its reduced cost (which is always the minimum anyway, but ties need a
// deterministic winner).
type sortedArcs struct {
	entries     []arcEntry
	headToIndex map[string]int
}

// newSortedArcs builds the cache for tail node u: one entry per out-edge of
// u whose head is itself reachable to target, sorted by reduced cost
// (ties broken by u's own out-edge enumeration order, which core.Graph
// already returns sorted by Edge.ID), with bestSuccessor swapped to index 0.
func newSortedArcs(g *core.Graph, o *oracle, u, bestSuccessor string) (*sortedArcs, error) {
	neighbors, err := g.Neighbors(u)
	if err != nil {
		return nil, err
	}

	entries := make([]arcEntry, 0, len(neighbors))
	for _, e := range neighbors {
		if !o.reachable(e.To) {
			continue
		}
		entries = append(entries, arcEntry{
			head:        e.To,
			reducedCost: o.dist[e.To] - o.dist[u] + e.Weight,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].reducedCost < entries[j].reducedCost
	})

	if bestSuccessor != "" {
		for i, entry := range entries {
			if entry.head == bestSuccessor && i != 0 {
				entries[0], entries[i] = entries[i], entries[0]
				break
			}
		}
	}

	headToIndex := make(map[string]int, len(entries))
	for i, entry := range entries {
		headToIndex[entry.head] = i
	}

	return &sortedArcs{entries: entries, headToIndex: headToIndex}, nil
}
