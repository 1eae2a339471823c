// File: reverse.go
// Role: non-mutating graph view — reverses every edge's direction.
// Determinism: preserves vertex IDs and edge weights; edge IDs are
// regenerated since From/To swap.
// Concurrency: read locks on source only; result is a fresh graph instance.
package core

// Reverse returns a new Graph with the same vertex set as g and every edge
// direction flipped: an edge from -> to with weight w in g becomes an edge
// to -> from with weight w in the result. g is not mutated.
//
// Complexity: O(V + E).
func (g *Graph) Reverse() *Graph {
	out := NewGraph(WithMultiEdges(), WithLoops())

	g.muVert.RLock()
	for id := range g.vertices {
		out.vertices[id] = &Vertex{ID: id}
		out.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	g.muVert.RUnlock()

	// Edges() returns g's edges sorted by Edge.ID, so the reversed edges get
	// their IDs (and out.Neighbors its order) the same way on every call.
	for _, e := range g.Edges() {
		// Ignore the error: endpoints already exist, weight is already
		// validated, and multi-edges/loops are permitted on out.
		_, _ = out.AddEdge(e.To, e.From, e.Weight)
	}

	return out
}
