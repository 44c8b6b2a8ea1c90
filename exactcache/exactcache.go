// Package exactcache holds exact treedepth answers for small graphs
// (N <= SmallN), keyed by graphhash.Hash and verified on lookup by
// graphhash isomorphism checking — a hash collision must never corrupt a
// result, only cost a cache miss.
//
// Unlike the original source's literal precomputed table, entries here are
// populated lazily by whoever first solves a given small shape (the
// engine's exact shortcuts or its general search) and are kept for the
// remainder of the current top-level Engine run; nothing survives across
// runs, matching spec.md's "no persistence" non-goal.
package exactcache

import "github.com/katalvlaran/treedepth/graphhash"

type entry struct {
	adj       [][]int
	td        int
	rootLocal int
}

// ExactCache is a hash-bucketed, isomorphism-verified table of exact small
// graph treedepths. It is owned by a single Engine run; the zero value is
// not usable, construct with New.
type ExactCache struct {
	smallN  int
	buckets map[uint32][]entry
}

// New returns an empty ExactCache that only ever stores/serves graphs with
// at most smallN vertices.
func New(smallN int) *ExactCache {
	return &ExactCache{smallN: smallN, buckets: make(map[uint32][]entry)}
}

// SmallN returns the vertex-count threshold at or below which this cache
// applies.
func (c *ExactCache) SmallN() int { return c.smallN }

// Lookup returns the exact treedepth and a witnessing root (in adj's local
// indexing) for a graph isomorphic to adj, if one has already been
// recorded. ok is false on a size overrun, an empty graph, or a genuine
// miss — any of which simply means "run the general algorithm".
func (c *ExactCache) Lookup(adj [][]int) (td int, rootLocal int, ok bool) {
	n := len(adj)
	if n == 0 || n > c.smallN {
		return 0, 0, false
	}
	h, _ := graphhash.Hash(adj)
	for _, e := range c.buckets[h] {
		mapping, mok := graphhash.IsomorphismMapping(adj, e.adj)
		if !mok || !graphhash.VerifyIsomorphism(adj, e.adj, mapping) {
			continue
		}
		// mapping sends adj's local index -> e.adj's local index; invert it
		// to translate e.rootLocal back into adj's local indexing.
		inv := make([]int, n)
		for from, to := range mapping {
			inv[to] = from
		}
		return e.td, inv[e.rootLocal], true
	}
	return 0, 0, false
}

// Store records that adj (N <= SmallN) has exact treedepth td witnessed by
// rootLocal (in adj's local indexing). Graphs larger than SmallN are
// silently ignored — the engine only ever calls Store after confirming the
// size itself.
func (c *ExactCache) Store(adj [][]int, td int, rootLocal int) {
	if len(adj) == 0 || len(adj) > c.smallN {
		return
	}
	h, _ := graphhash.Hash(adj)
	adjCopy := make([][]int, len(adj))
	for i, nbrs := range adj {
		adjCopy[i] = append([]int(nil), nbrs...)
	}
	c.buckets[h] = append(c.buckets[h], entry{adj: adjCopy, td: td, rootLocal: rootLocal})
}
