// Package yen implements Yen's algorithm for ranking the K shortest loopless
// paths between a single source and target in a directed, non-negative
// weighted core.Graph. It streams paths lazily in non-decreasing weight
// order and is used by the mps package as a fallback once its deviation-path
// search stalls on cyclic candidates.
package yen

import (
	"container/heap"
	"errors"
	"strings"

	"github.com/katalvlaran/ksp/core"
)

// Sentinel errors returned by ShortestSimplePaths.
var (
	// ErrEmptyEndpoint indicates an empty source or target vertex ID.
	ErrEmptyEndpoint = errors.New("yen: source or target vertex ID is empty")

	// ErrVertexNotFound indicates source or target is not a vertex of the graph.
	ErrVertexNotFound = errors.New("yen: vertex not found in graph")
)

// PathIter is a lazy stream of paths. Ranging over it with a yield function
// that returns false stops the stream early and releases its state.
type PathIter func(yield func(path []string) bool)

// ShortestSimplePaths returns the K shortest loopless paths from source to
// target in g, in non-decreasing weight order, as a lazy PathIter. K is not
// bounded: the returned iterator keeps producing paths (recomputing
// candidates as needed) until the caller stops ranging over it or the graph
// is exhausted of simple paths.
func ShortestSimplePaths(g *core.Graph, source, target string) (PathIter, error) {
	if source == "" || target == "" {
		return nil, ErrEmptyEndpoint
	}
	if !g.HasVertex(source) || !g.HasVertex(target) {
		return nil, ErrVertexNotFound
	}

	return func(yield func(path []string) bool) {
		s := &solver{
			g:        g,
			source:   source,
			target:   target,
			blockedV: make(map[string]bool),
			blockedE: make(map[[2]string]bool),
			emitted:  make(map[string]struct{}),
		}
		first, _, ok := s.shortestPath(source, target)
		if !ok {
			return
		}
		paths := [][]string{first}
		s.emit(first)
		if !yield(first) {
			return
		}

		for {
			last := paths[len(paths)-1]
			s.generateCandidates(paths, last)

			if s.pot.Len() == 0 {
				return
			}
			best := heap.Pop(&s.pot).(*candidate)
			paths = append(paths, best.path)
			s.emit(best.path)
			if !yield(best.path) {
				return
			}
		}
	}, nil
}

// solver holds the state of one streaming Yen run: the graph, the set of
// temporarily blocked nodes/edges used while computing a spur path, the
// heap of not-yet-emitted candidate paths, and the set of already emitted
// paths (Yen can rediscover the same candidate from two different spur
// nodes; only the first discovery is kept).
type solver struct {
	g        *core.Graph
	source   string
	target   string
	blockedV map[string]bool
	blockedE map[[2]string]bool
	pot      candidateHeap
	emitted  map[string]struct{}
}

func (s *solver) emit(path []string) {
	s.emitted[pathKey(path)] = struct{}{}
}

// generateCandidates runs the spur-node loop of Yen's algorithm against the
// most recently produced path, pushing every newly discovered candidate onto
// s.pot (skipping ones already emitted or already queued).
func (s *solver) generateCandidates(paths [][]string, last []string) {
	for n := 0; n < len(last)-1; n++ {
		spurNode := last[n]
		root := append([]string(nil), last[:n+1]...)

		for k := range s.blockedV {
			delete(s.blockedV, k)
		}
		for k := range s.blockedE {
			delete(s.blockedE, k)
		}

		for _, p := range paths {
			if len(p) > n && pathsShareRoot(p, root) {
				s.blockedE[[2]string{p[n], p[n+1]}] = true
			}
		}
		for _, v := range root[:len(root)-1] {
			s.blockedV[v] = true
		}

		spurPath, spurWeight, ok := s.shortestPath(spurNode, s.target)
		if !ok {
			continue
		}

		candPath := append(append([]string(nil), root[:len(root)-1]...), spurPath...)
		rootWeight := pathWeight(s.g, root)
		total := rootWeight + spurWeight

		key := pathKey(candPath)
		if _, done := s.emitted[key]; done {
			continue
		}
		if s.pot.contains(key) {
			continue
		}
		heap.Push(&s.pot, &candidate{path: candPath, weight: total, key: key})
	}
}

// shortestPath computes the shortest path from src to dst in s.g, treating
// nodes in s.blockedV and directed edges in s.blockedE as absent.
func (s *solver) shortestPath(src, dst string) ([]string, float64, bool) {
	dist := map[string]float64{src: 0}
	prev := map[string]string{}
	visited := map[string]bool{}

	pq := nodePQ{{id: src, dist: 0}}
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id
		if visited[u] {
			continue
		}
		if s.blockedV[u] && u != src {
			continue
		}
		visited[u] = true
		if u == dst {
			break
		}

		neighbors, err := s.g.Neighbors(u)
		if err != nil {
			continue
		}
		for _, e := range neighbors {
			v := e.To
			if s.blockedV[v] || s.blockedE[[2]string{u, v}] {
				continue
			}
			newDist := dist[u] + e.Weight
			if cur, ok := dist[v]; ok && newDist >= cur {
				continue
			}
			dist[v] = newDist
			prev[v] = u
			heap.Push(&pq, &nodeItem{id: v, dist: newDist})
		}
	}

	if _, ok := dist[dst]; !ok || !visited[dst] {
		return nil, 0, false
	}

	var path []string
	for cur := dst; ; {
		path = append(path, cur)
		if cur == src {
			break
		}
		p, ok := prev[cur]
		if !ok {
			return nil, 0, false
		}
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[dst], true
}

func pathWeight(g *core.Graph, path []string) float64 {
	var w float64
	for i := 1; i < len(path); i++ {
		neighbors, err := g.Neighbors(path[i-1])
		if err != nil {
			continue
		}
		for _, e := range neighbors {
			if e.To == path[i] {
				w += e.Weight
				break
			}
		}
	}

	return w
}

func pathsShareRoot(p, root []string) bool {
	if len(p) < len(root) {
		return false
	}
	for i, v := range root {
		if p[i] != v {
			return false
		}
	}

	return true
}

func pathKey(path []string) string {
	return strings.Join(path, "\x1f")
}

// candidate is a potential k-th shortest path awaiting emission.
type candidate struct {
	path   []string
	weight float64
	key    string
}

// candidateHeap is a min-heap of *candidate ordered by ascending weight.
type candidateHeap []*candidate

func (h candidateHeap) Len() int           { return len(h) }
func (h candidateHeap) Less(i, j int) bool { return h[i].weight < h[j].weight }
func (h candidateHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
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
func (h candidateHeap) contains(key string) bool {
	for _, c := range h {
		if c.key == key {
			return true
		}
	}

	return false
}

// nodeItem and nodePQ back the internal spur-path Dijkstra.
type nodeItem struct {
	id   string
	dist float64
}

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
