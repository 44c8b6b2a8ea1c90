// Package treedepth computes the exact treedepth of a graph and an
// elimination tree witnessing it.
//
// Treedepth is the minimum height of a rooted forest F over the same
// vertex set such that every edge of the input graph connects an
// ancestor to a descendant in F. This module finds the exact value (not
// an approximation) via branch-and-bound over minimal vertex separators,
// with k-core reduction, a memoized cache of subgraph bounds keyed by
// canonical vertex-set, and exact shortcuts for recognizable shapes
// (complete graphs, stars, cycles, trees).
//
// Packages:
//
//	core/         — Graph (parsed input) and SubGraph (induced subgraph:
//	                adjacency, traversal, k-core, shape predicates)
//	vertexset/    — roaring-bitmap-backed vertex id sets
//	graphhash/    — WL-style graph hash and isomorphism check, backing
//	                exactcache/
//	exactcache/   — small-graph exact-treedepth lookup table
//	settrie/      — trie over canonical subgraph words, the search's
//	                memoization cache
//	separator/    — minimal a,b-separator enumerator (Berry-Bordat-Cogis)
//	treedepthtree/ — linear-time exact treedepth of a tree
//	engine/       — the branch-and-bound search itself
//	ioformat/     — "p tdp N M" graph format reader/writer
//	internal/cli/ — the compute command
//	cmd/treedepth/ — CLI entry point
package treedepth
