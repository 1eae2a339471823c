// Package mps ranks the K shortest loopless paths to a fixed target in a
// directed, non-negative-weighted graph, using the Martins-Pascoal-Santos
// deviation-path algorithm: a single reverse-graph Dijkstra run builds a
// shortest-path oracle, and every subsequent candidate path is produced by
// locally deviating from an already-ranked one instead of rerunning a full
// shortest-path search.
//
// An Engine is built once against a fixed target and reused for any number
// of sources. ShortestSimplePaths returns a lazy PathIter: ranging over it
// with a yield that returns false stops the search immediately and frees
// its buffered candidates, no different from abandoning any other Go
// range-over-func iterator.
//
// When a run produces more consecutive cyclic candidates than its cycle
// budget tolerates, the engine gives up on deviation and hands the rest of
// the stream to yen.ShortestSimplePaths, which is slower per path but never
// stalls on cycles.
package mps

import (
	"github.com/katalvlaran/ksp/core"
	"github.com/katalvlaran/ksp/yen"
	"github.com/soniakeys/bits"
)

// PathIter is a lazy stream of paths, source first and target last. Ranging
// over it with a yield function that returns false stops the stream early.
type PathIter func(yield func(path []string) bool)

// Engine ranks simple paths to a fixed target. Build one with New or
// NewFromGraph and reuse it across sources: the reverse-graph Dijkstra run
// and the per-node arc caches it accumulates are shared by every
// ShortestSimplePaths call.
type Engine struct {
	g      *core.Graph
	target string

	oracle    *oracle
	interner  *interner
	arcsCache map[string]*sortedArcs

	opts Options
}

// New builds an Engine for target over g, using the caller-supplied reverse
// graph gRev (typically g.Reverse()) to seed the shortest-path oracle.
// Accepting gRev separately lets callers who already maintain a reverse
// adjacency structure skip rebuilding one.
//
// Returns ErrNilGraph, ErrEmptyTarget, ErrTargetNotFound, or
// ErrVertexMismatch.
func New(g, gRev *core.Graph, target string, opts ...Option) (*Engine, error) {
	if g == nil || gRev == nil {
		return nil, ErrNilGraph
	}
	if target == "" {
		return nil, ErrEmptyTarget
	}
	if !g.HasVertex(target) {
		return nil, ErrTargetNotFound
	}
	if !sameVertexSet(g, gRev) {
		return nil, ErrVertexMismatch
	}

	o, err := buildOracle(g, gRev, target)
	if err != nil {
		return nil, err
	}

	reachable := make(map[string]struct{}, len(o.dist))
	for v := range o.dist {
		reachable[v] = struct{}{}
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{
		g:         g,
		target:    target,
		oracle:    o,
		interner:  newInterner(reachable),
		arcsCache: make(map[string]*sortedArcs),
		opts:      cfg,
	}, nil
}

// NewFromGraph is New with gRev computed from g via g.Reverse().
func NewFromGraph(g *core.Graph, target string, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return New(g, g.Reverse(), target, opts...)
}

// arcsOf returns the sorted-arc cache for tail node u, building and caching
// it on first use.
func (e *Engine) arcsOf(u string) (*sortedArcs, error) {
	if cached, ok := e.arcsCache[u]; ok {
		return cached, nil
	}

	var bestSuccessor string
	if p, ok := e.oracle.path[u]; ok && len(p) > 1 {
		bestSuccessor = p[1]
	}

	arcs, err := newSortedArcs(e.g, e.oracle, u, bestSuccessor)
	if err != nil {
		return nil, err
	}
	e.arcsCache[u] = arcs

	return arcs, nil
}

// ShortestSimplePaths returns the simple paths from source to e.target, in
// non-decreasing cost order, as a lazy PathIter.
//
// Returns ErrEmptySource or ErrSourceNotFound.
func (e *Engine) ShortestSimplePaths(source string) (PathIter, error) {
	if source == "" {
		return nil, ErrEmptySource
	}
	if !e.g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}

	return func(yield func(path []string) bool) {
		if !e.oracle.reachable(source) {
			return
		}

		yielded := make(map[string]struct{})
		yieldOnce := func(path []string) bool {
			yielded[pathKey(path)] = struct{}{}

			return yield(path)
		}

		// Seed the buffer with the oracle's own shortest path, at relative
		// cost dist[source] instead of the reference driver's 0.0 — an
		// equivalent rebasing, since nothing outside this closure ever
		// reads a candidate's cost field, and it keeps intermediate costs
		// readable as true path weights if this is ever debugged.
		buf := newCandidateBuffer()
		seedCost := e.oracle.dist[source]
		buf.push(seedCost, append([]string(nil), e.oracle.path[source]...), 0, seedCost)

		consecutiveCycles := 0
		for {
			if e.opts.cycleBudget >= 0 && consecutiveCycles >= e.opts.cycleBudget {
				e.runFallback(source, yieldOnce, yielded)

				return
			}
			if buf.Len() == 0 {
				return
			}

			cand := buf.pop()
			if pathHasCycle(e.interner, cand.path) {
				consecutiveCycles++
			} else {
				consecutiveCycles = 0
				if !yieldOnce(cand.path) {
					return
				}
			}
			e.deviate(cand, buf)
		}
	}, nil
}

// runFallback hands the rest of the ranking to yen.ShortestSimplePaths,
// skipping any path already delivered through yieldOnce.
func (e *Engine) runFallback(source string, yieldOnce func([]string) bool, yielded map[string]struct{}) {
	it, err := yen.ShortestSimplePaths(e.g, source, e.target)
	if err != nil {
		return
	}

	it(func(path []string) bool {
		if _, done := yielded[pathKey(path)]; done {
			return true
		}

		return yieldOnce(path)
	})
}

// sameVertexSet reports whether g and gRev share exactly the same vertex
// IDs, which New requires since gRev is supposed to be g's reverse view.
func sameVertexSet(g, gRev *core.Graph) bool {
	if g.VertexCount() != gRev.VertexCount() {
		return false
	}
	for _, v := range g.Vertices() {
		if !gRev.HasVertex(v) {
			return false
		}
	}

	return true
}

// pathHasCycle reports whether path visits any node twice.
func pathHasCycle(in *interner, path []string) bool {
	seen := bits.New(in.len())
	for _, v := range path {
		ix := in.index(v)
		if seen.Bit(ix) == 1 {
			return true
		}
		seen.SetBit(ix, 1)
	}

	return false
}
