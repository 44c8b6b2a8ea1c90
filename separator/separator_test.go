package separator_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treedepth/core"
	"github.com/katalvlaran/treedepth/separator"
)

func buildPath5() *core.SubGraph {
	g := core.NewGraph(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	return g.AsSubGraph()
}

func buildBowtie() *core.SubGraph {
	g := core.NewGraph(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(0, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	g.AddEdge(2, 4)
	return g.AsSubGraph()
}

func drain(gen *separator.Generator, batch int) [][]int {
	var all [][]int
	for gen.HasNext() {
		all = append(all, gen.Next(batch)...)
	}
	return all
}

func TestPathMiddleVertexIsASeparator(t *testing.T) {
	gen := separator.New(buildPath5())
	got := drain(gen, 100)
	require.NotEmpty(t, got, "expected at least one minimal separator for a path")
	require.Contains(t, got, []int{2}, "expected {2} (middle vertex) among separators of P5")
}

func TestGeneratorNeverRepeatsASeparator(t *testing.T) {
	gen := separator.New(buildBowtie())
	got := drain(gen, 2) // force small batches to exercise incremental draining
	seen := make(map[string]bool)
	for _, s := range got {
		sorted := append([]int(nil), s...)
		sort.Ints(sorted)
		key := ""
		for _, v := range sorted {
			key += string(rune('a' + v))
		}
		require.False(t, seen[key], "separator %v returned more than once", s)
		seen[key] = true
	}
}

func TestBowtieCutVertexIsASeparator(t *testing.T) {
	gen := separator.New(buildBowtie())
	got := drain(gen, 100)
	require.Contains(t, got, []int{2}, "expected {2} (the shared vertex) among separators of the bowtie")
}

func TestExhaustedGeneratorReturnsEmptyBatches(t *testing.T) {
	gen := separator.New(buildPath5())
	drain(gen, 100)
	require.False(t, gen.HasNext(), "generator should report exhausted after draining")
	require.Empty(t, gen.Next(10), "Next on an exhausted generator should return nothing")
}
