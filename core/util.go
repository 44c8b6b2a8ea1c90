package core

import (
	"sort"

	"github.com/katalvlaran/treedepth/vertexset"
)

func sortInts(xs []int) { sort.Ints(xs) }

// newLocalMask returns an empty vertexset.Set sized for n ids. The Roaring
// bitmap backing it needs no pre-sizing, but the helper keeps call sites
// uniform with the rest of the package.
func newLocalMask(n int) *vertexset.Set {
	return vertexset.New()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
