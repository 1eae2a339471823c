package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/ksp/core"
	"github.com/katalvlaran/ksp/dijkstra"
	"github.com/katalvlaran/ksp/testgraph"
	"github.com/stretchr/testify/require"
)

func buildGraph(t *testing.T) *core.Graph {
	t.Helper()

	return testgraph.SixNode()
}

func TestDijkstraDistancesAndPredecessors(t *testing.T) {
	g := buildGraph(t)

	dist, prev, err := dijkstra.Dijkstra(g, "1", dijkstra.WithReturnPath())
	require.NoError(t, err)

	require.Equal(t, 0.0, dist["1"])
	require.Equal(t, 0.0, dist["3"])
	require.Equal(t, 1.0, dist["6"]) // shortest is 1->4->6 (0+1), not 1->3->6 (0+2)
	require.Equal(t, "1", prev["3"]) // unambiguous: 1->3 direct (0) beats 1->2->3 (1)
}

func TestDijkstraNoReturnPath(t *testing.T) {
	g := buildGraph(t)

	_, prev, err := dijkstra.Dijkstra(g, "1")
	require.NoError(t, err)
	require.Nil(t, prev)
}

func TestDijkstraErrors(t *testing.T) {
	g := buildGraph(t)

	_, _, err := dijkstra.Dijkstra(g, "")
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, _, err = dijkstra.Dijkstra(nil, "1")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Dijkstra(g, "z")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstraUnreachableOmitted(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_ = g.AddVertex("C") // isolated

	dist, _, err := dijkstra.Dijkstra(g, "A")
	require.NoError(t, err)
	_, ok := dist["C"]
	require.False(t, ok)
}
