package core

// KCore returns the connected components of the maximum subgraph of s in
// which every vertex has degree >= k, in ascending minimum-global-id order.
//
// A nil (empty) slice means the whole graph peels away under k-core
// reduction (no vertex survives). A single-element slice equal in size to s
// means no reduction took place. Peeling is a single explicit-stack
// propagation over a local degree array; no recursion, no shared state.
func (s *SubGraph) KCore(k int) []*SubGraph {
	n := len(s.globals)
	degree := make([]int, n)
	for v := 0; v < n; v++ {
		degree[v] = len(s.adj[v])
	}

	removed := make([]bool, n)
	verticesLeft := n
	var stack []int
	for v := 0; v < n; v++ {
		if degree[v] < k && degree[v] > 0 {
			stack = append(stack, v)
			degree[v] = 0
			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if !removed[cur] {
					removed[cur] = true
					verticesLeft--
				}
				for _, nb := range s.adj[cur] {
					if degree[nb] > 0 {
						degree[nb]--
						if degree[nb] < k {
							stack = append(stack, nb)
							degree[nb] = 0
						}
					}
				}
			}
		}
	}
	// Any vertex with initial degree 0 that also falls below k must be
	// explicitly marked removed (the loop above only starts from
	// degree[v] > 0 to match the peeling process; a 0-degree vertex below k
	// is covered here).
	for v := 0; v < n; v++ {
		if k > 0 && degree[v] == 0 && !removed[v] {
			removed[v] = true
			verticesLeft--
		}
	}

	if verticesLeft == n {
		return []*SubGraph{s}
	}
	if verticesLeft == 0 {
		return nil
	}

	survivors := make([]int, 0, verticesLeft)
	for v := 0; v < n; v++ {
		if !removed[v] {
			survivors = append(survivors, v)
		}
	}
	return s.ConnectedComponents(survivors)
}

// TwoCore repeatedly strips degree-1 vertices (and the vertices that become
// degree-1 as a result) and returns the residual SubGraph, which may be s
// itself (no leaves to strip) or the empty SubGraph (s is itself a tree).
func (s *SubGraph) TwoCore() *SubGraph {
	n := len(s.globals)
	degree := make([]int, n)
	for v := 0; v < n; v++ {
		degree[v] = len(s.adj[v])
	}

	verticesLeft := n
	for v := 0; v < n; v++ {
		if degree[v] == 1 {
			cur := v
			for degree[cur] == 1 {
				degree[cur] = 0
				verticesLeft--
				advanced := false
				for _, nb := range s.adj[cur] {
					if degree[nb] > 0 {
						degree[nb]--
						cur = nb
						advanced = true
						break
					}
				}
				if !advanced {
					break
				}
			}
		}
	}

	if verticesLeft == n {
		return s
	}

	survivors := make([]int, 0, verticesLeft)
	for v := 0; v < n; v++ {
		if degree[v] > 0 {
			survivors = append(survivors, v)
		}
	}
	if len(survivors) == 0 {
		return newInduced(s, nil)
	}
	return newInduced(s, survivors)
}
