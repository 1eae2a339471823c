package mps_test

import (
	"testing"

	"github.com/katalvlaran/ksp/core"
	"github.com/katalvlaran/ksp/mps"
	"github.com/katalvlaran/ksp/testgraph"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, it mps.PathIter, n int) [][]string {
	t.Helper()
	var out [][]string
	count := 0
	it(func(path []string) bool {
		out = append(out, path)
		count++

		return count < n
	})

	return out
}

func TestShortestSimplePathsSourceFive(t *testing.T) {
	g := testgraph.SixNode()
	e, err := mps.NewFromGraph(g, "6")
	require.NoError(t, err)

	it, err := e.ShortestSimplePaths("5")
	require.NoError(t, err)

	paths := collect(t, it, 3)
	require.Equal(t, [][]string{
		{"5", "6"},
		{"5", "2", "4", "6"},
		{"5", "2", "3", "6"},
	}, paths)
}

func TestShortestSimplePathsNonDecreasingAndLoopless(t *testing.T) {
	g := testgraph.SixNode()
	e, err := mps.NewFromGraph(g, "6")
	require.NoError(t, err)

	it, err := e.ShortestSimplePaths("1")
	require.NoError(t, err)

	paths := collect(t, it, 6)
	require.NotEmpty(t, paths)

	var lastCost float64
	for i, p := range paths {
		require.Equal(t, "1", p[0])
		require.Equal(t, "6", p[len(p)-1])

		seen := make(map[string]bool)
		for _, v := range p {
			require.False(t, seen[v], "path %v must be loopless", p)
			seen[v] = true
		}

		cost := pathCost(t, g, p)
		if i > 0 {
			require.GreaterOrEqual(t, cost, lastCost)
		}
		lastCost = cost
	}
}

func TestShortestSimplePathsSourceEqualsTarget(t *testing.T) {
	g := testgraph.SixNode()
	e, err := mps.NewFromGraph(g, "6")
	require.NoError(t, err)

	it, err := e.ShortestSimplePaths("6")
	require.NoError(t, err)

	paths := collect(t, it, 5)
	require.Equal(t, [][]string{{"6"}}, paths)
}

func TestShortestSimplePathsEarlyStopReleasesIteration(t *testing.T) {
	g := testgraph.SixNode()
	e, err := mps.NewFromGraph(g, "6")
	require.NoError(t, err)

	it, err := e.ShortestSimplePaths("1")
	require.NoError(t, err)

	paths := collect(t, it, 1)
	require.Len(t, paths, 1)
	require.Equal(t, []string{"1", "4", "6"}, paths[0])
}

func TestShortestSimplePathsUnreachable(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_ = g.AddVertex("C")

	e, err := mps.NewFromGraph(g, "B")
	require.NoError(t, err)

	it, err := e.ShortestSimplePaths("C")
	require.NoError(t, err)
	require.Empty(t, collect(t, it, 5))
}

func TestNewErrors(t *testing.T) {
	g := testgraph.SixNode()

	_, err := mps.New(nil, nil, "6")
	require.ErrorIs(t, err, mps.ErrNilGraph)

	_, err = mps.NewFromGraph(g, "")
	require.ErrorIs(t, err, mps.ErrEmptyTarget)

	_, err = mps.NewFromGraph(g, "z")
	require.ErrorIs(t, err, mps.ErrTargetNotFound)

	partial := core.NewGraph()
	_, _ = partial.AddEdge("1", "2", 1)
	gRev := core.NewGraph()
	_ = gRev.AddVertex("1")
	_, err = mps.New(partial, gRev, "2")
	require.ErrorIs(t, err, mps.ErrVertexMismatch)
}

func TestShortestSimplePathsErrors(t *testing.T) {
	g := testgraph.SixNode()
	e, err := mps.NewFromGraph(g, "6")
	require.NoError(t, err)

	_, err = e.ShortestSimplePaths("")
	require.ErrorIs(t, err, mps.ErrEmptySource)

	_, err = e.ShortestSimplePaths("z")
	require.ErrorIs(t, err, mps.ErrSourceNotFound)
}

func TestWithCycleBudgetStillProducesLooplessPaths(t *testing.T) {
	g := testgraph.SixNode()
	e, err := mps.NewFromGraph(g, "6", mps.WithCycleBudget(0))
	require.NoError(t, err)

	it, err := e.ShortestSimplePaths("1")
	require.NoError(t, err)

	paths := collect(t, it, 4)
	require.NotEmpty(t, paths)
	for _, p := range paths {
		seen := make(map[string]bool)
		for _, v := range p {
			require.False(t, seen[v])
			seen[v] = true
		}
	}
}

func pathCost(t *testing.T, g *core.Graph, path []string) float64 {
	t.Helper()

	var total float64
	for i := 1; i < len(path); i++ {
		neighbors, err := g.Neighbors(path[i-1])
		require.NoError(t, err)
		found := false
		for _, e := range neighbors {
			if e.To == path[i] {
				total += e.Weight
				found = true
				break
			}
		}
		require.True(t, found, "no edge %s->%s", path[i-1], path[i])
	}

	return total
}
