// Package separator enumerates minimal a,b-separators of a core.SubGraph as
// a pull-style batch generator, per the Berry-Bordat-Cogis technique:
// seed candidate separators from single-vertex closed-neighborhood
// components, then close the candidate set under a component-removal rule
// until no new minimal separator is produced.
package separator

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/treedepth/core"
	"github.com/katalvlaran/treedepth/vertexset"
)

// Generator produces each minimal separator of its SubGraph at most once,
// in chunks via Next. Order across and within batches is unspecified;
// consumers are expected to sort a batch by their own cost heuristic.
//
// All generator state (seen-set, work queue, seeding cursor) is owned by
// the Generator value — nothing is package-level, so multiple Generators
// (one per recursion frame) never interfere with each other.
type Generator struct {
	g       *core.SubGraph
	pending [][]int // ready-to-emit separators, as global-id words
	queue   [][]int // local-index separators awaiting closure expansion
	seen    map[string]struct{}

	seedCursor int
	seeding    bool
}

// New returns a Generator over g. Construction does no work; generation
// happens lazily as HasNext/Next are called.
func New(g *core.SubGraph) *Generator {
	return &Generator{g: g, seen: make(map[string]struct{}), seeding: true}
}

// HasNext reports whether the generator may still produce more separators.
// An exhausted generator (HasNext() == false) means the enumeration is
// complete: the engine may conclude no further separator-based branching
// is needed.
func (gen *Generator) HasNext() bool {
	gen.advanceUntil(1)
	return len(gen.pending) > 0
}

// Next returns up to batchSize not-yet-returned minimal separators, each as
// a sorted slice of global vertex ids.
func (gen *Generator) Next(batchSize int) [][]int {
	gen.advanceUntil(batchSize)
	n := batchSize
	if n > len(gen.pending) {
		n = len(gen.pending)
	}
	batch := gen.pending[:n]
	gen.pending = gen.pending[n:]
	return batch
}

// advanceUntil runs generation steps until at least want separators are
// queued for emission, or the enumeration is exhausted.
func (gen *Generator) advanceUntil(want int) {
	for len(gen.pending) < want {
		if gen.seeding {
			gen.seedStep()
			continue
		}
		if len(gen.queue) > 0 {
			S := gen.queue[0]
			gen.queue = gen.queue[1:]
			gen.closureStep(S)
			continue
		}
		return // fully exhausted
	}
}

// seedStep processes the next vertex's closed-neighborhood components.
func (gen *Generator) seedStep() {
	v := gen.seedCursor
	gen.seedCursor++
	if v >= gen.g.N() {
		gen.seeding = false
		return
	}

	closed := vertexset.New()
	closed.Add(v)
	for _, nb := range gen.g.Adj(v) {
		closed.Add(nb)
	}
	remaining := complement(gen.g.N(), closed)
	for _, comp := range connectedComponentsLocal(gen.g, remaining) {
		gen.tryAdd(neighborhoodOf(gen.g, comp))
	}
}

// closureStep applies the Berry-Bordat-Cogis closure rule to a previously
// found minimal separator S: for every full component C of G\S and every
// vertex x in S adjacent to C, remove the closed neighborhood of x from
// C union {x}; the neighborhood of each resulting sub-component is a new
// minimal separator candidate.
func (gen *Generator) closureStep(S []int) {
	sSet := vertexset.FromSlice(S)
	complementS := complement(gen.g.N(), sSet)
	for _, comp := range connectedComponentsLocal(gen.g, complementS) {
		for _, x := range verticesAdjacentTo(gen.g, S, comp) {
			region := append(append([]int(nil), comp...), x)
			closedX := vertexset.New()
			closedX.Add(x)
			for _, nb := range gen.g.Adj(x) {
				closedX.Add(nb)
			}
			remainder := subtractSet(region, closedX)
			for _, sub := range connectedComponentsLocal(gen.g, remainder) {
				gen.tryAdd(neighborhoodOf(gen.g, sub))
			}
		}
	}
}

// tryAdd records a newly found minimal separator (in local indices) if it
// has not been seen before, queuing it for closure expansion and emission.
func (gen *Generator) tryAdd(localSep []int) {
	if len(localSep) == 0 {
		return
	}
	sorted := append([]int(nil), localSep...)
	sort.Ints(sorted)
	key := encodeKey(sorted)
	if _, dup := gen.seen[key]; dup {
		return
	}
	gen.seen[key] = struct{}{}
	gen.queue = append(gen.queue, sorted)

	word := make([]int, len(sorted))
	for i, local := range sorted {
		word[i] = gen.g.Global(local)
	}
	sort.Ints(word)
	gen.pending = append(gen.pending, word)
}

func encodeKey(sorted []int) string {
	var b strings.Builder
	for _, v := range sorted {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(',')
	}
	return b.String()
}

// complement returns every local index in 0..n-1 not in excluded.
func complement(n int, excluded *vertexset.Set) []int {
	out := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if !excluded.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

// subtractSet returns the elements of ids not present in excluded.
func subtractSet(ids []int, excluded *vertexset.Set) []int {
	out := make([]int, 0, len(ids))
	for _, v := range ids {
		if !excluded.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

// connectedComponentsLocal returns the connected components of g induced on
// the given local-index vertex set, each as a slice of local indices.
func connectedComponentsLocal(g *core.SubGraph, verts []int) [][]int {
	inSet := vertexset.FromSlice(verts)
	visited := vertexset.New()
	var comps [][]int
	for _, root := range verts {
		if visited.Contains(root) {
			continue
		}
		var comp []int
		stack := []int{root}
		visited.Add(root)
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, v)
			for _, nb := range g.Adj(v) {
				if inSet.Contains(nb) && !visited.Contains(nb) {
					visited.Add(nb)
					stack = append(stack, nb)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// neighborhoodOf returns every local index outside comp adjacent to some
// vertex in comp, i.e. N(comp).
func neighborhoodOf(g *core.SubGraph, comp []int) []int {
	inComp := vertexset.FromSlice(comp)
	nbhd := vertexset.New()
	for _, v := range comp {
		for _, nb := range g.Adj(v) {
			if !inComp.Contains(nb) {
				nbhd.Add(nb)
			}
		}
	}
	return nbhd.ToSorted()
}

// verticesAdjacentTo returns every vertex in S with at least one neighbor
// in comp.
func verticesAdjacentTo(g *core.SubGraph, S []int, comp []int) []int {
	inComp := vertexset.FromSlice(comp)
	var out []int
	for _, x := range S {
		for _, nb := range g.Adj(x) {
			if inComp.Contains(nb) {
				out = append(out, x)
				break
			}
		}
	}
	return out
}
