package core

import (
	"sort"

	"github.com/katalvlaran/treedepth/vertexset"
)

// ConnectedComponents returns the connected components of the subgraph
// induced by the given local vertex indices, each as its own SubGraph, in
// ascending minimum-global-id order. The scratch visited/membership sets
// used by the traversal are local to this call and discarded on return.
func (s *SubGraph) ConnectedComponents(localVerts []int) []*SubGraph {
	inSet := vertexset.New()
	inSet.AddAll(localVerts)
	visited := vertexset.New()

	var comps [][]int
	for _, root := range localVerts {
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
			for _, nb := range s.adj[v] {
				if inSet.Contains(nb) && !visited.Contains(nb) {
					visited.Add(nb)
					stack = append(stack, nb)
				}
			}
		}
		comps = append(comps, comp)
	}

	sort.Slice(comps, func(i, j int) bool {
		return s.minGlobal(comps[i]) < s.minGlobal(comps[j])
	})

	out := make([]*SubGraph, len(comps))
	for i, comp := range comps {
		out[i] = newInduced(s, comp)
	}
	return out
}

func (s *SubGraph) minGlobal(localVerts []int) int {
	m := s.globals[localVerts[0]]
	for _, v := range localVerts[1:] {
		if s.globals[v] < m {
			m = s.globals[v]
		}
	}
	return m
}

// WithoutVertex returns the connected components of s with local vertex w
// removed, in ascending minimum-global-id order.
func (s *SubGraph) WithoutVertex(w int) []*SubGraph {
	return s.WithoutVertices([]int{w})
}

// WithoutVertices returns the connected components of s with the given
// local vertices removed, in ascending minimum-global-id order.
func (s *SubGraph) WithoutVertices(ws []int) []*SubGraph {
	removed := vertexset.New()
	removed.AddAll(ws)

	remaining := make([]int, 0, len(s.globals)-len(ws))
	for v := 0; v < len(s.globals); v++ {
		if !removed.Contains(v) {
			remaining = append(remaining, v)
		}
	}
	return s.ConnectedComponents(remaining)
}
