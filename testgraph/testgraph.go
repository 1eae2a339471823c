// Package testgraph builds the fixture graphs used across this module's test
// suites, so the mps and yen packages exercise literally the same data when
// their outputs are compared.
package testgraph

import "github.com/katalvlaran/ksp/core"

// SixNode builds the six-node directed graph used throughout the test
// suites: nodes 1..6, target 6, with the edge set and weights from the
// algorithm's reference test fixture.
//
// Edges: (1,3,0) (1,2,0) (1,4,0) (2,3,1) (2,4,2) (3,5,2) (3,6,2)
//
//	(4,5,1) (4,6,1) (5,2,1) (5,6,0)
func SixNode() *core.Graph {
	g := core.NewGraph()
	edges := [...]struct {
		from, to string
		weight   float64
	}{
		{"1", "3", 0}, {"1", "2", 0}, {"1", "4", 0},
		{"2", "3", 1}, {"2", "4", 2},
		{"3", "5", 2}, {"3", "6", 2},
		{"4", "5", 1}, {"4", "6", 1},
		{"5", "2", 1}, {"5", "6", 0},
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e.from, e.to, e.weight); err != nil {
			panic(err) // fixture edges are always valid
		}
	}

	return g
}
