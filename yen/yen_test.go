package yen_test

import (
	"testing"

	"github.com/katalvlaran/ksp/core"
	"github.com/katalvlaran/ksp/testgraph"
	"github.com/katalvlaran/ksp/yen"
	"github.com/stretchr/testify/require"
)

func buildGraph(t *testing.T) *core.Graph {
	t.Helper()

	return testgraph.SixNode()
}

func collect(t *testing.T, it yen.PathIter, n int) [][]string {
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
	g := buildGraph(t)
	it, err := yen.ShortestSimplePaths(g, "5", "6")
	require.NoError(t, err)

	// 5->2->3->6 and 5->2->4->6 both weigh 4; the spur search from 5 reaches
	// 6 through 3 first, so that one comes second.
	paths := collect(t, it, 3)
	require.Equal(t, [][]string{
		{"5", "6"},
		{"5", "2", "3", "6"},
		{"5", "2", "4", "6"},
	}, paths)
}

func TestShortestSimplePathsNonDecreasingWeight(t *testing.T) {
	g := buildGraph(t)
	it, err := yen.ShortestSimplePaths(g, "1", "6")
	require.NoError(t, err)

	paths := collect(t, it, 6)
	require.NotEmpty(t, paths)
	var lastWeight float64
	for i, p := range paths {
		require.Equal(t, "1", p[0])
		require.Equal(t, "6", p[len(p)-1])
		seen := make(map[string]bool)
		for _, v := range p {
			require.False(t, seen[v], "path %v must be loopless", p)
			seen[v] = true
		}

		var weight float64
		for j := 1; j < len(p); j++ {
			neighbors, err := g.Neighbors(p[j-1])
			require.NoError(t, err)
			for _, e := range neighbors {
				if e.To == p[j] {
					weight += e.Weight
				}
			}
		}
		if i > 0 {
			require.GreaterOrEqual(t, weight, lastWeight)
		}
		lastWeight = weight
	}
}

func TestShortestSimplePathsErrors(t *testing.T) {
	g := buildGraph(t)

	_, err := yen.ShortestSimplePaths(g, "", "6")
	require.ErrorIs(t, err, yen.ErrEmptyEndpoint)

	_, err = yen.ShortestSimplePaths(g, "z", "6")
	require.ErrorIs(t, err, yen.ErrVertexNotFound)
}

func TestShortestSimplePathsUnreachable(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_ = g.AddVertex("C")

	it, err := yen.ShortestSimplePaths(g, "C", "B")
	require.NoError(t, err)
	require.Empty(t, collect(t, it, 5))
}
