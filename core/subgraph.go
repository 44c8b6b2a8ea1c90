package core

import (
	"sort"

	"github.com/katalvlaran/treedepth/vertexset"
)

// SubGraph is an induced subgraph over a dense range of local indices
// 0..N-1, each mapped to a global vertex id. globals is kept strictly
// increasing: it is both the local-to-global lookup table and the
// canonical word used to key the engine's caches.
type SubGraph struct {
	globals   []int   // local index -> global id, strictly increasing
	adj       [][]int // local adjacency lists, each sorted ascending
	mask      *vertexset.Set
	m         int
	maxDegree int
	minDegree int
}

// N returns the number of vertices in the subgraph.
func (s *SubGraph) N() int { return len(s.globals) }

// M returns the number of edges.
func (s *SubGraph) M() int { return s.m }

// MaxDegree returns the maximum vertex degree, or 0 for the empty subgraph.
func (s *SubGraph) MaxDegree() int { return s.maxDegree }

// MinDegree returns the minimum vertex degree, or 0 for the empty subgraph.
func (s *SubGraph) MinDegree() int { return s.minDegree }

// Adj returns the local-index neighbors of local vertex v, ascending.
func (s *SubGraph) Adj(v int) []int { return s.adj[v] }

// Degree returns len(Adj(v)).
func (s *SubGraph) Degree(v int) int { return len(s.adj[v]) }

// MinDegreeVertexLocal returns the local index of a vertex attaining
// MinDegree (the lowest such index, for determinism).
func (s *SubGraph) MinDegreeVertexLocal() int {
	for v := range s.adj {
		if len(s.adj[v]) == s.minDegree {
			return v
		}
	}
	return 0
}

// MaxDegreeVertexLocal returns the local index of a vertex attaining
// MaxDegree (the lowest such index, for determinism).
func (s *SubGraph) MaxDegreeVertexLocal() int {
	for v := range s.adj {
		if len(s.adj[v]) == s.maxDegree {
			return v
		}
	}
	return 0
}

// Global returns the global id of local vertex v.
func (s *SubGraph) Global(v int) int { return s.globals[v] }

// Local returns the local index of global id g, if present.
func (s *SubGraph) Local(g int) (int, bool) {
	i := sort.SearchInts(s.globals, g)
	if i < len(s.globals) && s.globals[i] == g {
		return i, true
	}
	return -1, false
}

// Word returns the canonical word of the subgraph: its globals, strictly
// increasing. Callers must not mutate the returned slice.
func (s *SubGraph) Word() []int { return s.globals }

// Mask returns the set of global ids present in the subgraph. Callers must
// not mutate the returned set.
func (s *SubGraph) Mask() *vertexset.Set { return s.mask }

// newInduced builds the induced SubGraph of parent restricted to the given
// local indices (in any order; duplicates are not allowed). The result's
// globals are sorted ascending regardless of the input order, preserving
// the canonical-word invariant.
func newInduced(parent *SubGraph, localVerts []int) *SubGraph {
	n := len(localVerts)
	sorted := append([]int(nil), localVerts...)
	sort.Slice(sorted, func(i, j int) bool {
		return parent.globals[sorted[i]] < parent.globals[sorted[j]]
	})

	globals := make([]int, n)
	newIndex := make(map[int]int, n) // parent-local -> new-local
	mask := vertexset.New()
	for i, pl := range sorted {
		globals[i] = parent.globals[pl]
		newIndex[pl] = i
		mask.Add(globals[i])
	}

	adj := make([][]int, n)
	m, maxDegree, minDegree := 0, 0, -1
	for i, pl := range sorted {
		nbrs := make([]int, 0, len(parent.adj[pl]))
		for _, pn := range parent.adj[pl] {
			if nl, ok := newIndex[pn]; ok {
				nbrs = append(nbrs, nl)
			}
		}
		sort.Ints(nbrs)
		adj[i] = nbrs
		m += len(nbrs)
		if len(nbrs) > maxDegree {
			maxDegree = len(nbrs)
		}
		if minDegree == -1 || len(nbrs) < minDegree {
			minDegree = len(nbrs)
		}
	}
	if minDegree == -1 {
		minDegree = 0
	}
	if m%2 != 0 {
		panic("core: induced adjacency lists are not symmetric")
	}

	return &SubGraph{
		globals:   globals,
		adj:       adj,
		mask:      mask,
		m:         m / 2,
		maxDegree: maxDegree,
		minDegree: minDegree,
	}
}
