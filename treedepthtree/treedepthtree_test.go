package treedepthtree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treedepth/core"
	"github.com/katalvlaran/treedepth/treedepthtree"
)

func TestSingleVertex(t *testing.T) {
	g := core.NewGraph(1)
	td, root := treedepthtree.Solve(g.AsSubGraph())
	require.Equal(t, 1, td)
	require.Equal(t, 0, root)
}

func TestStarTreedepthIsTwo(t *testing.T) {
	g := core.NewGraph(5)
	for leaf := 1; leaf < 5; leaf++ {
		g.AddEdge(0, leaf)
	}
	td, root := treedepthtree.Solve(g.AsSubGraph())
	require.Equal(t, 2, td)
	require.Equal(t, 0, root, "root should be the center vertex")
}

// A path on 2^k - 1 vertices has treedepth exactly k (attained by repeatedly
// rooting at the middle vertex).
func TestPathTreedepthMatchesLogBound(t *testing.T) {
	cases := []struct {
		n  int
		td int
	}{
		{1, 1},
		{3, 2},
		{7, 3},
		{15, 4},
	}
	for _, c := range cases {
		g := core.NewGraph(c.n)
		for i := 0; i+1 < c.n; i++ {
			g.AddEdge(i, i+1)
		}
		td, _ := treedepthtree.Solve(g.AsSubGraph())
		require.Equal(t, c.td, td, "path n=%d", c.n)
	}
}

// A "caterpillar" (path with extra leaves hanging off each spine vertex)
// needs at least one layer more than its spine: the spine 0-1-2 alone has
// treedepth 2, and a tree that is not a star has treedepth at least 3.
func TestCaterpillarAtLeastSpineDepth(t *testing.T) {
	// Spine 0-1-2, each with one extra leaf.
	g := core.NewGraph(6)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(0, 3)
	g.AddEdge(1, 4)
	g.AddEdge(2, 5)
	td, _ := treedepthtree.Solve(g.AsSubGraph())
	require.GreaterOrEqual(t, td, 3, "a caterpillar that is not a star needs treedepth 3")
}
