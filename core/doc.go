// Package core provides the graph data structures the treedepth engine
// searches over: Graph, a plain global-id adjacency list parsed once from
// the input, and SubGraph, a dense local-index induced subgraph supporting
// fast vertex removal, component extraction, k-core/two-core reduction, and
// shape recognition.
//
// Every SubGraph carries its own globals slice (local index -> global id,
// strictly increasing — the "canonical word" used as a cache key elsewhere)
// and a vertexset.Set mask of the global ids it contains. Traversals never
// share visited state across calls: each call owns its own scratch set and
// never leaves it mutated on any exit path.
package core
