package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/ksp/core"
)

// Dijkstra computes shortest distances from source to every other vertex
// reachable from it in g.
//
// Returns:
//   - dist: vertex ID -> minimum distance from source. Only reachable
//     vertices are present.
//   - prev: vertex ID -> predecessor on the shortest path from source, for
//     every reachable vertex except source itself. nil unless
//     WithReturnPath is given.
//   - err: ErrEmptySource, ErrNilGraph, ErrVertexNotFound, or
//     ErrNegativeWeight.
//
// Complexity: O((V + E) log V).
func Dijkstra(g *core.Graph, source string, opts ...Option) (map[string]float64, map[string]string, error) {
	if source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, ErrVertexNotFound
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner{
		g:       g,
		source:  source,
		dist:    make(map[string]float64),
		visited: make(map[string]bool),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string)
	}

	r.dist[source] = 0
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})

	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state of a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	source  string
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

// process repeatedly extracts the minimum-distance vertex and relaxes its
// outgoing edges until the heap is exhausted.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		if r.visited[u] {
			continue // stale lazy-decrease-key entry
		}
		if d > r.dist[u] {
			continue
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines every edge outgoing from u and improves distances to its heads.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s->%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}

		v := e.To
		newDist := r.dist[u] + e.Weight
		if cur, ok := r.dist[v]; ok && newDist >= cur {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem pairs a vertex with its tentative distance from source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by ascending dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
