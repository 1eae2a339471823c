package mps

import (
	"github.com/katalvlaran/ksp/core"
	"github.com/katalvlaran/ksp/dijkstra"
)

// oracle is the shortest-path-to-target precomputation the rest of this
// package leans on. It is built once, from a single Dijkstra run over the
// reverse graph gRev seeded at target, and answers two questions in O(1)
// per node thereafter:
//
//   - dist[v]: the shortest distance from v to target in the forward graph.
//   - path[v]: the shortest v-to-target path itself, v first, target last.
//
// The key trick (see SPEC_FULL.md §4.1) is that running Dijkstra on gRev
// from target produces a predecessor map where prev[v] is v's own next-hop
// successor on its forward shortest path to target — not its predecessor.
// Reconstructing path[v] is therefore just walking prev forward from v
// until target is reached, not backward from target.
type oracle struct {
	target string
	dist   map[string]float64
	path   map[string][]string

	// revOutDegree[v] is the number of out-edges of v in gRev, which by
	// construction equals the number of in-edges of v in the forward graph
	// g. The deviation generator's "no other path to target" prune tests
	// this value, matching the reference ranking algorithm's test on its
	// reversed-graph adjacency rather than a literal in-degree computation.
	revOutDegree map[string]int
}

// buildOracle runs dijkstra.Dijkstra on gRev from target and derives dist,
// path, and revOutDegree for every vertex that can reach target (every
// vertex that run reaches); other vertices get no entry.
func buildOracle(g, gRev *core.Graph, target string) (*oracle, error) {
	dist, prev, err := dijkstra.Dijkstra(gRev, target, dijkstra.WithReturnPath())
	if err != nil {
		return nil, err
	}

	o := &oracle{
		target:       target,
		dist:         dist,
		path:         make(map[string][]string, len(dist)),
		revOutDegree: make(map[string]int, len(dist)),
	}

	for v := range dist {
		o.path[v] = reconstructPath(v, target, prev)

		neighbors, err := gRev.Neighbors(v)
		if err != nil {
			return nil, err
		}
		o.revOutDegree[v] = len(neighbors)
	}

	return o, nil
}

// reconstructPath walks prev forward from v (prev being the predecessor map
// of a Dijkstra run seeded at target on the reverse graph) until it reaches
// target, building the forward v-to-target path.
func reconstructPath(v, target string, prev map[string]string) []string {
	path := []string{v}
	cur := v
	for cur != target {
		next, ok := prev[cur]
		if !ok {
			break
		}
		path = append(path, next)
		cur = next
	}

	return path
}

// reachable reports whether v has a known shortest path to target.
func (o *oracle) reachable(v string) bool {
	_, ok := o.dist[v]

	return ok
}
