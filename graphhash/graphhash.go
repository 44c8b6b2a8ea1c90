// Package graphhash computes an isomorphism-invariant (but not certifying)
// fingerprint of a graph via iterative neighbor-hash refinement, in the
// style of a one-round-per-vertex Weisfeiler-Leman color refinement.
//
// Hash and IsomorphismMapping are heuristics: equal fingerprints are
// necessary but not sufficient for isomorphism. Callers that need a real
// answer must verify any candidate mapping with VerifyIsomorphism — see
// exactcache for the canonical consumer of this pattern.
package graphhash

import "sort"

// mix is the 32-bit Boost-style hash-combine mixer: it adds x, the golden-
// ratio constant and two shifted copies of seed, then XORs the sum into seed.
func mix(seed uint32, x uint32) uint32 {
	return seed ^ (x + 0x9e3779b9 + (seed << 6) + (seed >> 2))
}

// Hash computes the graph fingerprint and per-vertex hashes of adj, a local
// adjacency list (adj[v] lists the local-index neighbors of v).
//
// Algorithm: initialize h[v] = degree(v); for len(adj) rounds, recompute
// h[v] by sorting v's neighbors on their previous-round hash and folding
// that sorted sequence (plus the degree as a length seed) through mix;
// after the last round, fold the sorted final per-vertex hashes (seeded
// with len(adj)) into the graph hash.
func Hash(adj [][]int) (graphHash uint32, vertexHash []uint32) {
	n := len(adj)
	hashes := make([]uint32, n)
	for v := 0; v < n; v++ {
		hashes[v] = uint32(len(adj[v]))
	}

	for round := 0; round < n; round++ {
		prev := hashes
		hashes = make([]uint32, n)
		for v := 0; v < n; v++ {
			nbrs := append([]int(nil), adj[v]...)
			sort.Slice(nbrs, func(i, j int) bool { return prev[nbrs[i]] < prev[nbrs[j]] })
			seed := uint32(len(nbrs))
			for _, nb := range nbrs {
				seed = mix(seed, prev[nb])
			}
			hashes[v] = seed
		}
	}

	order := make([]int, n)
	for v := range order {
		order[v] = v
	}
	sort.Slice(order, func(i, j int) bool { return hashes[order[i]] < hashes[order[j]] })
	seed := uint32(n)
	for _, v := range order {
		seed = mix(seed, hashes[v])
	}
	return seed, hashes
}

// IsomorphismMapping proposes a vertex mapping g1 -> g2 based on their
// graph and per-vertex hashes. It returns ok == false whenever the graphs
// cannot possibly be isomorphic under this heuristic (different sizes,
// different fingerprints, or a degree/hash mismatch once vertices are
// paired by ascending hash). A true result is only a candidate: callers
// must confirm it with VerifyIsomorphism.
func IsomorphismMapping(g1, g2 [][]int) (mapping []int, ok bool) {
	if len(g1) != len(g2) {
		return nil, false
	}
	n := len(g1)
	h1, vh1 := Hash(g1)
	h2, vh2 := Hash(g2)
	if h1 != h2 {
		return nil, false
	}

	order1 := make([]int, n)
	order2 := make([]int, n)
	for v := 0; v < n; v++ {
		order1[v] = v
		order2[v] = v
	}
	sort.Slice(order1, func(i, j int) bool { return vh1[order1[i]] < vh1[order1[j]] })
	sort.Slice(order2, func(i, j int) bool { return vh2[order2[i]] < vh2[order2[j]] })

	mapping = make([]int, n)
	for i := 0; i < n; i++ {
		v1, v2 := order1[i], order2[i]
		if len(g1[v1]) != len(g2[v2]) || vh1[v1] != vh2[v2] {
			return nil, false
		}
		mapping[v1] = v2
	}
	return mapping, true
}

// VerifyIsomorphism checks, by direct set-equality of mapped neighborhoods,
// whether mapping is a genuine isomorphism from g1 to g2. This is the
// certificate step IsomorphismMapping's heuristic result always needs: a
// hash collision must never be trusted without it.
func VerifyIsomorphism(g1, g2 [][]int, mapping []int) bool {
	if len(g1) != len(g2) || len(mapping) != len(g1) {
		return false
	}
	for v1, nbrs1 := range g1 {
		v2 := mapping[v1]
		if v2 < 0 || v2 >= len(g2) {
			return false
		}
		mapped := make(map[int]struct{}, len(nbrs1))
		for _, nb := range nbrs1 {
			mapped[mapping[nb]] = struct{}{}
		}
		if len(mapped) != len(g2[v2]) {
			return false
		}
		for _, nb := range g2[v2] {
			if _, ok := mapped[nb]; !ok {
				return false
			}
		}
	}
	return true
}
