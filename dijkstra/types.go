// Package dijkstra implements single-source Dijkstra shortest paths over a
// core.Graph with non-negative float64 edge weights.
//
// Dijkstra processes vertices in order of increasing distance using a
// min-heap priority queue, relaxing edges and updating distances. It uses a
// "lazy decrease-key" strategy: a shorter distance to a vertex is pushed as
// a new heap entry rather than updating one in place, and stale entries are
// skipped when popped.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
package dijkstra

import "errors"

// Sentinel errors returned by Dijkstra.
var (
	// ErrEmptySource indicates an empty source vertex ID.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates a negative edge weight was found during relaxation.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Options configures a Dijkstra run.
type Options struct {
	// ReturnPath, if true, makes Dijkstra populate the predecessor map.
	// If false, the returned predecessor map is nil.
	ReturnPath bool
}

// Option is a functional option for Dijkstra.
type Option func(*Options)

// WithReturnPath enables population of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// DefaultOptions returns the zero-value Options (ReturnPath disabled).
func DefaultOptions() Options {
	return Options{}
}
