package engine

import (
	"math"
	"time"
)

// Config bundles the knobs the engine's search may be tuned with. The zero
// value is not directly usable for TimeLimit semantics; use DefaultConfig.
type Config struct {
	// SmallN is the vertex-count threshold at or below which ExactCache is
	// consulted for a cheap exact-shape lookup.
	SmallN int
	// SubsetGap is max_gap passed to SetTrie.BigSubsets during cache
	// seeding. Zero disables subset-based lower-bound inheritance.
	SubsetGap int
	// SeparatorBatch is the chunk size requested from separator.Generator.
	SeparatorBatch int
	// TimeLimit is the wall-clock budget for one top-level Solve call.
	// Zero means unlimited.
	TimeLimit time.Duration
}

// DefaultConfig returns the engine's out-of-the-box tuning: a modest
// ExactCache threshold, subset inheritance enabled with an effectively
// unbounded gap, a generously large separator batch, and no time limit.
func DefaultConfig() Config {
	return Config{
		SmallN:         10,
		SubsetGap:      math.MaxInt32,
		SeparatorBatch: 100000,
	}
}
