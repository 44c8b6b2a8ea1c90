package engine_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treedepth/core"
	"github.com/katalvlaran/treedepth/engine"
)

func solve(t *testing.T, g *core.SubGraph) (int, map[int]int) {
	t.Helper()
	e := engine.New(engine.DefaultConfig())
	td, parent, err := e.Solve(context.Background(), g)
	require.NoError(t, err)
	return td, parent
}

// bruteForceTD computes treedepth by trying every vertex as root,
// recursing on the resulting components. Exponential; only used in tests
// on small graphs as an independent cross-check.
func bruteForceTD(g *core.SubGraph) int {
	n := g.N()
	if n == 0 {
		return 0
	}
	if n == 1 {
		return 1
	}
	best := n
	for v := 0; v < n; v++ {
		worst := 0
		for _, comp := range g.WithoutVertex(v) {
			if td := bruteForceTD(comp); td > worst {
				worst = td
			}
		}
		if worst+1 < best {
			best = worst + 1
		}
	}
	return best
}

// checkValidElimination verifies the returned parent map describes a valid
// elimination forest: every input edge has one endpoint an ancestor of the
// other, and the forest's height equals td.
func checkValidElimination(t *testing.T, g *core.SubGraph, td int, parent map[int]int) {
	t.Helper()
	depth := make(map[int]int)
	var depthOf func(v int) int
	depthOf = func(v int) int {
		if d, ok := depth[v]; ok {
			return d
		}
		p := parent[v]
		d := 1
		if p != -1 {
			d = depthOf(p) + 1
		}
		depth[v] = d
		return d
	}
	maxDepth := 0
	for v := range parent {
		if d := depthOf(v); d > maxDepth {
			maxDepth = d
		}
	}
	require.Equal(t, td, maxDepth, "reconstructed forest height should equal td")

	isAncestor := func(a, b int) bool {
		for cur := b; cur != -1; cur = parent[cur] {
			if cur == a {
				return true
			}
		}
		return false
	}
	for v := 0; v < g.N(); v++ {
		for _, nb := range g.Adj(v) {
			gv, gnb := g.Global(v), g.Global(nb)
			require.True(t, isAncestor(gv, gnb) || isAncestor(gnb, gv),
				"edge (%d,%d) has neither endpoint an ancestor of the other", gv, gnb)
		}
	}
}

func buildGraph(n int, edges [][2]int) *core.SubGraph {
	g := core.NewGraph(n)
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	return g.AsSubGraph()
}

// S1: Triangle, td = 3.
func TestTriangle(t *testing.T) {
	g := buildGraph(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	td, parent := solve(t, g)
	require.Equal(t, 3, td)
	checkValidElimination(t, g, td, parent)
}

// S2: Path P5, td = 3.
func TestPathP5(t *testing.T) {
	g := buildGraph(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	td, parent := solve(t, g)
	require.Equal(t, 3, td)
	checkValidElimination(t, g, td, parent)
}

// S3: Star K_{1,4}, td = 2.
func TestStarK14(t *testing.T) {
	g := buildGraph(5, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}})
	td, parent := solve(t, g)
	require.Equal(t, 2, td)
	checkValidElimination(t, g, td, parent)
}

// S4: Cycle C6, td = 1 + ceil(log2 6) = 4.
func TestCycleC6(t *testing.T) {
	g := buildGraph(6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}})
	td, parent := solve(t, g)
	require.Equal(t, 4, td)
	checkValidElimination(t, g, td, parent)
}

// S5: Complete graph K4, td = 4.
func TestCompleteK4(t *testing.T) {
	g := buildGraph(4, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}})
	td, parent := solve(t, g)
	require.Equal(t, 4, td)
	checkValidElimination(t, g, td, parent)
}

// S6: Bowtie, two triangles sharing a vertex, td = 3.
func TestBowtie(t *testing.T) {
	g := buildGraph(5, [][2]int{{0, 1}, {1, 2}, {0, 2}, {2, 3}, {3, 4}, {2, 4}})
	td, parent := solve(t, g)
	require.Equal(t, 3, td)
	checkValidElimination(t, g, td, parent)
}

func TestRandomConnectedGraphsMatchBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		n := 3 + rng.Intn(7) // 3..9
		g := core.NewGraph(n)
		// Spanning path guarantees connectivity, then add random extra edges.
		perm := rng.Perm(n)
		for i := 0; i+1 < n; i++ {
			g.AddEdge(perm[i], perm[i+1])
		}
		extra := rng.Intn(n)
		for i := 0; i < extra; i++ {
			a, b := rng.Intn(n), rng.Intn(n)
			if a != b {
				g.AddEdge(a, b)
			}
		}
		sub := g.AsSubGraph()

		want := bruteForceTD(sub)
		td, parent := solve(t, sub)
		require.Equal(t, want, td, "trial %d", trial)
		checkValidElimination(t, sub, td, parent)
	}
}
