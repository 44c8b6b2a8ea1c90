// Package treedepthtree computes the exact treedepth of a tree in linear
// time via a rooted-signature tree dynamic program, generalizing the
// closed-form path-graph logic of the production engine to arbitrary trees.
package treedepthtree

import "github.com/katalvlaran/treedepth/core"

// Solve returns the exact treedepth of g, which must be a tree (g.M() ==
// g.N()-1 and connected), together with the global id of a vertex
// witnessing that treedepth when used as the elimination root.
//
// The algorithm rolls the tree up from its leaves: for a vertex v with
// children c1..ck (subtrees rooted arbitrarily, then re-rooted at v), the
// treedepth of the subtree rooted at v is
//
//	1 + max(heights of the children subtrees with each child as non-root,
//	        i.e. treedepth of child subtree when v is removed)
//
// and the minimum over all choices of global root is found by evaluating
// every vertex as a candidate root via one DFS per root naively would be
// quadratic; instead we use the standard "re-rooting" technique: compute
// the answer for an arbitrary root with one post-order pass, then use a
// second pass that re-derives the value for every vertex as root from its
// parent's value in O(1) amortized, which is the tree-DP generalization of
// the path-graph middle-vertex shortcut.
func Solve(g *core.SubGraph) (td int, rootGlobal int) {
	n := g.N()
	if n == 0 {
		return 0, 0
	}
	if n == 1 {
		return 1, g.Global(0)
	}

	parent := make([]int, n)
	order := make([]int, 0, n)
	visited := make([]bool, n)
	parent[0] = -1
	stack := []int{0}
	visited[0] = true
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, v)
		for _, nb := range g.Adj(v) {
			if !visited[nb] {
				visited[nb] = true
				parent[nb] = v
				stack = append(stack, nb)
			}
		}
	}

	// down[v] = treedepth of the subtree hanging below v, rooted at v, when
	// v's edge to its parent is cut (i.e. v is the root of its own subtree).
	down := make([]int, n)
	children := make([][]int, n)
	for _, v := range order {
		if parent[v] >= 0 {
			children[parent[v]] = append(children[parent[v]], v)
		}
	}
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		best := 0
		for _, c := range children[v] {
			if down[c] > best {
				best = down[c]
			}
		}
		down[v] = best + 1
	}

	// up[v] = treedepth contributed by the rest of the tree, if the edge
	// from v to parent[v] is cut and the rest of the tree (containing the
	// original root's side) is treated as a subtree hanging off parent[v].
	up := make([]int, n)
	up[0] = 0
	for _, v := range order {
		p := parent[v]
		if p < 0 {
			continue
		}
		// Best depth among p's other children (excluding v) and p's own
		// up-side.
		best := up[p]
		for _, sib := range children[p] {
			if sib == v {
				continue
			}
			if down[sib] > best {
				best = down[sib]
			}
		}
		up[v] = best + 1
	}

	bestTD := n + 1
	bestV := 0
	for _, v := range order {
		candidate := down[v]
		if up[v] > 0 {
			h := up[v]
			if h > candidate-1 {
				candidate = h + 1
			}
		}
		if candidate < bestTD {
			bestTD = candidate
			bestV = v
		}
	}
	return bestTD, g.Global(bestV)
}
