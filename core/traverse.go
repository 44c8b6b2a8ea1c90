package core

import "github.com/katalvlaran/treedepth/vertexset"

// Bfs returns the local vertex indices reachable from root, in
// breadth-first visit order. The queue and visited set are local to this
// call; no state is shared across calls.
func (s *SubGraph) Bfs(root int) []int {
	order := make([]int, 0, len(s.globals))
	visited := vertexset.New()
	queue := []int{root}
	visited.Add(root)
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)
		for _, nb := range s.adj[v] {
			if !visited.Contains(nb) {
				visited.Add(nb)
				queue = append(queue, nb)
			}
		}
	}
	return order
}

// BfsTree returns a spanning tree of s rooted at root, as a SubGraph over
// the same vertex set with only tree edges. Unreachable vertices (s is
// disconnected) stay in the result as isolated vertices; callers of this
// engine never pass a disconnected SubGraph (see ioformat.Components), so
// that case does not arise in practice.
func (s *SubGraph) BfsTree(root int) *SubGraph {
	n := len(s.globals)
	visited := vertexset.New()
	treeAdj := make([][]int, n)
	order := []int{root}
	visited.Add(root)
	for i := 0; i < len(order); i++ {
		v := order[i]
		for _, nb := range s.adj[v] {
			if !visited.Contains(nb) {
				visited.Add(nb)
				treeAdj[v] = append(treeAdj[v], nb)
				treeAdj[nb] = append(treeAdj[nb], v)
				order = append(order, nb)
			}
		}
	}
	return treeFromAdjacency(s, treeAdj)
}

// DfsTree returns a spanning tree of s rooted at root, as a SubGraph over
// the same vertex set with only tree edges, built via an explicit-stack DFS.
func (s *SubGraph) DfsTree(root int) *SubGraph {
	n := len(s.globals)
	visited := vertexset.New()
	treeAdj := make([][]int, n)
	stack := []int{root}
	visited.Add(root)
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nb := range s.adj[v] {
			if !visited.Contains(nb) {
				visited.Add(nb)
				treeAdj[v] = append(treeAdj[v], nb)
				treeAdj[nb] = append(treeAdj[nb], v)
				stack = append(stack, nb)
			}
		}
	}
	return treeFromAdjacency(s, treeAdj)
}

// treeFromAdjacency wraps a tree adjacency list (already in local indices,
// over the full vertex set of s) into a SubGraph sharing s's mask/globals.
func treeFromAdjacency(s *SubGraph, treeAdj [][]int) *SubGraph {
	n := len(s.globals)
	globals := append([]int(nil), s.globals...)
	m, maxDegree, minDegree := 0, 0, -1
	for v := 0; v < n; v++ {
		sortInts(treeAdj[v])
		m += len(treeAdj[v])
		if len(treeAdj[v]) > maxDegree {
			maxDegree = len(treeAdj[v])
		}
		if minDegree == -1 || len(treeAdj[v]) < minDegree {
			minDegree = len(treeAdj[v])
		}
	}
	if minDegree == -1 {
		minDegree = 0
	}
	return &SubGraph{
		globals:   globals,
		adj:       treeAdj,
		mask:      s.mask.Clone(),
		m:         m / 2,
		maxDegree: maxDegree,
		minDegree: minDegree,
	}
}
