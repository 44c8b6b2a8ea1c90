// Package engine implements the branch-and-bound treedepth search: for a
// connected core.SubGraph it computes proven [lower, upper] bounds and a
// witness elimination root, memoizing every subgraph it touches in a
// settrie.SetTrie keyed by canonical vertex-set word.
package engine

import (
	"context"
	"sort"
	"time"

	"github.com/katalvlaran/treedepth/core"
	"github.com/katalvlaran/treedepth/exactcache"
	"github.com/katalvlaran/treedepth/separator"
	"github.com/katalvlaran/treedepth/settrie"
	"github.com/katalvlaran/treedepth/treedepthtree"
)

const maxBestSeparators = 4

// Engine owns one search run: its cache, its exact-answer table, and its
// deadline. Nothing here is package-level, so independent Engines (one per
// connected component of the input, say) never share state.
type Engine struct {
	cfg      Config
	cache    *settrie.SetTrie
	exact    *exactcache.ExactCache
	deadline time.Time
	timed    bool
	started  bool
}

// New returns an Engine ready to search with the given configuration.
func New(cfg Config) *Engine {
	return &Engine{
		cfg:   cfg,
		cache: settrie.New(),
		exact: exactcache.New(cfg.SmallN),
	}
}

// Solve computes the exact treedepth of g and an elimination tree
// witnessing it, returning parent as a map from global vertex id (within
// g) to the global id of its parent in the tree, or settrie.NONE for the
// root. g must be connected. ctx cancellation (e.g. SIGINT via
// signal.NotifyContext) unwinds the search the same way TimeLimit does.
func (e *Engine) Solve(ctx context.Context, g *core.SubGraph) (td int, parent map[int]int, err error) {
	if !e.started {
		e.started = true
		if e.cfg.TimeLimit > 0 {
			e.timed = true
			e.deadline = time.Now().Add(e.cfg.TimeLimit)
		}
	}
	n := g.N()
	if n == 0 {
		return 0, map[int]int{}, nil
	}

	_, upper, _, err := e.Calculate(ctx, g, 1, n)
	if err != nil {
		return 0, nil, err
	}

	parent = make(map[int]int, n)
	for _, gid := range g.Word() {
		parent[gid] = settrie.NONE
	}
	if err := e.reconstruct(ctx, g, settrie.NONE, parent, upper); err != nil {
		return 0, nil, err
	}
	return upper, parent, nil
}

// checkDeadline reports ctx's cancellation first (so an external Ctrl-C
// preempts even an unlimited-TimeLimit run), then the engine's own
// wall-clock budget.
func (e *Engine) checkDeadline(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if e.timed && time.Now().After(e.deadline) {
		return ErrTimeLimitExceeded
	}
	return nil
}

// Calculate computes bounds on td(g) within the caller's search window,
// per the contract: 1 <= lower <= td(g) <= upper <= N, with early return
// once the window is provably resolved. On return the cache holds a
// consistent entry for g's canonical word.
func (e *Engine) Calculate(ctx context.Context, g *core.SubGraph, searchLbnd, searchUbnd int) (lower, upper, root int, err error) {
	defer func() {
		if err == nil {
			e.maybeStoreExact(g, lower, upper, root)
		}
	}()

	if err := e.checkDeadline(ctx); err != nil {
		return 0, 0, settrie.NONE, err
	}

	n := g.N()
	if n == 1 {
		return 1, 1, g.Global(0), nil
	}

	trivialLower := maxInt(g.M()/n+1, g.MinDegree()+1)
	node, inserted := e.cache.Insert(g.Word())
	if inserted {
		node.Record = settrie.Record{Lower: trivialLower, Upper: n, Root: g.Global(0)}
	}
	lower, upper, root = node.Record.Lower, node.Record.Upper, node.Record.Root

	windowClosed := func() bool {
		return searchUbnd <= lower || searchLbnd >= upper || lower == upper
	}
	if windowClosed() {
		return lower, upper, root, nil
	}

	// Exact shortcuts.
	if td, rt, ok := e.tryExactShortcut(g); ok {
		node.Record = settrie.Record{Lower: td, Upper: td, Root: rt}
		return td, td, rt, nil
	}
	if n <= e.cfg.SmallN {
		if td, rootLocal, ok := e.exact.Lookup(adjSlices(g)); ok {
			rt := g.Global(rootLocal)
			node.Record = settrie.Record{Lower: td, Upper: td, Root: rt}
			return td, td, rt, nil
		}
	}

	// Reduction: the sparse-shell peeling fallback (production path's
	// k-core reduction is folded into a lower-bound-only tightening below,
	// see reduceLowerBound; the witnessed upper-bound path here handles
	// the case the whole graph is shell, i.e. the (min_degree+1)-core is
	// empty).
	if e.wholeGraphIsShell(g) {
		localV := g.MinDegreeVertexLocal()
		newUpper, _, rt, err := e.branchOnVertex(ctx, g, localV, node, lower, upper, searchLbnd, searchUbnd)
		if err != nil {
			return 0, 0, settrie.NONE, err
		}
		if newUpper < upper {
			upper = newUpper
			root = rt
			node.Record.Upper = upper
			node.Record.Root = root
		}
		if windowClosed() {
			return lower, upper, root, nil
		}
	} else if newLowerFromCore, err := e.reduceLowerBound(ctx, g); err != nil {
		return 0, 0, settrie.NONE, err
	} else if newLowerFromCore > lower {
		lower = newLowerFromCore
		node.Record.Lower = lower
		if windowClosed() {
			return lower, upper, root, nil
		}
	}

	// Cache seeding, only performed the first time this word is seen.
	if inserted {
		if err := e.seedCache(ctx, g, node); err != nil {
			return 0, 0, settrie.NONE, err
		}
		lower, upper, root = node.Record.Lower, node.Record.Upper, node.Record.Root
		if windowClosed() {
			return lower, upper, root, nil
		}
	}

	// Branching by separators.
	newLower := n
	tryOne := func(S []int) (bool, error) {
		closed, err := e.separatorIteration(ctx, g, S, node, searchLbnd, searchUbnd, &newLower)
		if err != nil {
			return false, err
		}
		lower, upper, root = node.Record.Lower, node.Record.Upper, node.Record.Root
		return closed, nil
	}

	for _, S := range node.Record.BestSeparators {
		closed, err := tryOne(S)
		if err != nil {
			return 0, 0, settrie.NONE, err
		}
		if closed {
			return lower, upper, root, nil
		}
	}

	gen := separator.New(g)
	for gen.HasNext() {
		if err := e.checkDeadline(ctx); err != nil {
			return 0, 0, settrie.NONE, err
		}
		batch := gen.Next(e.cfg.SeparatorBatch)
		sortByCost(g, batch)
		for _, S := range batch {
			closed, err := tryOne(S)
			if err != nil {
				return 0, 0, settrie.NONE, err
			}
			if closed {
				return lower, upper, root, nil
			}
		}
	}

	if newLower > lower {
		lower = newLower
		node.Record.Lower = lower
	}
	return lower, upper, root, nil
}

// wholeGraphIsShell reports whether peeling every vertex of degree less
// than min_degree+1 collapses the whole graph (i.e. its (min_degree+1)-core
// is empty).
func (e *Engine) wholeGraphIsShell(g *core.SubGraph) bool {
	k := g.MinDegree()
	return g.KCore(k+1) == nil
}

// reduceLowerBound tightens a lower bound on td(g) using its (min_degree+1)
// -core: any subgraph's treedepth lower-bounds the treedepth of the whole,
// so td(core component) is always safe to fold in without a witness.
func (e *Engine) reduceLowerBound(ctx context.Context, g *core.SubGraph) (int, error) {
	k := g.MinDegree()
	comps := g.KCore(k + 1)
	best := 0
	for _, h := range comps {
		if h.N() == g.N() {
			continue // no actual reduction took place
		}
		lo, _, _, err := e.Calculate(ctx, h, 1, h.N())
		if err != nil {
			return 0, err
		}
		if lo > best {
			best = lo
		}
	}
	return best, nil
}

// branchOnVertex removes localV from g, recurses on the resulting
// components with an alpha-beta window, and combines them the way a single
// candidate elimination root always does: height 1 + worst component.
func (e *Engine) branchOnVertex(ctx context.Context, g *core.SubGraph, localV int, node *settrie.Node, lower, upper, searchLbnd, searchUbnd int) (newUpper, newLower int, root int, err error) {
	searchUbndV := minInt(searchUbnd-1, upper-1)
	searchLbndV := maxInt(searchLbnd-1, 1)
	upperV, lowerV := 0, lower-1

	for _, h := range g.WithoutVertex(localV) {
		lo, up, _, err := e.Calculate(ctx, h, searchLbndV, searchUbndV)
		if err != nil {
			return 0, 0, settrie.NONE, err
		}
		if up > upperV {
			upperV = up
		}
		if lo > lowerV {
			lowerV = lo
		}
		if lo > searchLbndV {
			searchLbndV = lo
		}
		if lo >= searchUbndV {
			return upper, lowerV + 1, node.Record.Root, nil // early break: this root not useful
		}
	}
	return upperV + 1, lowerV + 1, g.Global(localV), nil
}

// seedCache runs the three cheap tightening heuristics of a freshly
// inserted cache entry: a witnessed upper-bound pass via the max-degree
// vertex, subset-based lower-bound inheritance, and a DFS-tree lower bound.
func (e *Engine) seedCache(ctx context.Context, g *core.SubGraph, node *settrie.Node) error {
	maxV := g.MaxDegreeVertexLocal()
	lower, upper, root := node.Record.Lower, node.Record.Upper, node.Record.Root
	newUpper, _, rt, err := e.branchOnVertex(ctx, g, maxV, node, lower, upper, 1, g.N())
	if err != nil {
		return err
	}
	if newUpper < upper {
		upper = newUpper
		root = rt
		node.Record.Upper = upper
		node.Record.Root = root
	}

	if e.cfg.SubsetGap > 0 {
		for _, sub := range e.cache.BigSubsets(g.Word(), e.cfg.SubsetGap) {
			if sub == node {
				continue
			}
			if sub.Record.Lower > node.Record.Lower {
				node.Record.Lower = sub.Record.Lower
			}
		}
	}

	dfsTree := g.DfsTree(maxV)
	tdLower, _ := treedepthtree.Solve(dfsTree)
	if tdLower > node.Record.Lower {
		node.Record.Lower = tdLower
	}
	return nil
}

// separatorIteration applies one candidate separator S (global ids) to g,
// recursing into the components of g\S and tightening node's bounds. It
// returns whether the search window is now fully resolved.
func (e *Engine) separatorIteration(ctx context.Context, g *core.SubGraph, S []int, node *settrie.Node, searchLbnd, searchUbnd int, newLower *int) (bool, error) {
	if err := e.checkDeadline(ctx); err != nil {
		return false, err
	}
	s := len(S)
	lower, upper := node.Record.Lower, node.Record.Upper

	windowLo := maxInt(1, maxInt(searchLbnd, lower)-s)
	windowHi := maxInt(1, minInt(searchUbnd, upper)-s)

	localS := make([]int, 0, s)
	for _, gid := range S {
		if l, ok := g.Local(gid); ok {
			localS = append(localS, l)
		}
	}
	comps := g.WithoutVertices(localS)
	sort.Slice(comps, func(i, j int) bool { return density(comps[i]) > density(comps[j]) })

	upperSep, lowerSep := 0, 0
	alpha := windowLo
	earlyBreak := false
	for _, h := range comps {
		lo, up, _, err := e.Calculate(ctx, h, alpha, windowHi)
		if err != nil {
			return false, err
		}
		if up > upperSep {
			upperSep = up
		}
		if lo > lowerSep {
			lowerSep = lo
		}
		if lo > alpha {
			alpha = lo
		}
		if lo >= windowHi {
			earlyBreak = true
			break
		}
	}

	if !earlyBreak && upperSep+s < upper {
		upper = upperSep + s
		node.Record.Upper = upper
		node.Record.Root = S[0]
		e.inlineSeparatorChain(g, S, upper)
	}
	if lowerSep+s < *newLower {
		*newLower = lowerSep + s
	}
	if lowerSep > lower {
		lower = lowerSep
		node.Record.Lower = lower
	}
	if upperSep+s == upper {
		remembered := append([][]int(nil), node.Record.BestSeparators...)
		remembered = append(remembered, append([]int(nil), S...))
		if len(remembered) > maxBestSeparators {
			remembered = remembered[len(remembered)-maxBestSeparators:]
		}
		node.Record.BestSeparators = remembered
	}

	lower, upper = node.Record.Lower, node.Record.Upper
	return upper <= searchLbnd || lower == upper, nil
}

// inlineSeparatorChain walks the elimination chain S[0], S[1], ... through
// g, inserting or tightening a cache entry at each step so reconstruction
// never has to recompute a large subproblem after a successful separator.
func (e *Engine) inlineSeparatorChain(g *core.SubGraph, S []int, upper int) {
	cur := g
	for i := 1; i < len(S); i++ {
		localPrev, ok := cur.Local(S[i-1])
		if !ok {
			return
		}
		var big *core.SubGraph
		for _, c := range cur.WithoutVertex(localPrev) {
			if c.N() > 1 && (big == nil || c.N() > big.N()) {
				big = c
			}
		}
		if big == nil {
			return
		}
		cur = big
		node2, inserted2 := e.cache.Insert(cur.Word())
		newUpper := upper - i
		if inserted2 {
			trivial := maxInt(cur.M()/cur.N()+1, cur.MinDegree()+1)
			node2.Record = settrie.Record{Lower: trivial, Upper: newUpper, Root: S[i]}
		} else {
			if newUpper < node2.Record.Upper {
				node2.Record.Upper = newUpper
				node2.Record.Root = S[i]
			}
		}
	}
}

// tryExactShortcut recognizes shapes with O(N) exact treedepth formulas:
// complete graphs, stars, cycles, paths, and general trees.
func (e *Engine) tryExactShortcut(g *core.SubGraph) (td int, root int, ok bool) {
	n := g.N()
	switch {
	case g.IsComplete():
		return n, g.Global(0), true
	case g.IsStar():
		for v := 0; v < n; v++ {
			if g.Degree(v) == g.MaxDegree() {
				return 2, g.Global(v), true
			}
		}
	case g.IsTree(): // covers IsPath as a special case
		td, rt := treedepthtree.Solve(g)
		return td, rt, true
	case g.IsCycle():
		// Removing any vertex from a cycle leaves a path; that is optimal.
		rest := g.WithoutVertex(0)
		if len(rest) == 1 {
			pathTD, _ := treedepthtree.Solve(rest[0])
			return pathTD + 1, g.Global(0), true
		}
	}
	return 0, 0, false
}

// maybeStoreExact records a freshly resolved exact answer (lower == upper,
// within the small-graph threshold) into ExactCache, so a later isomorphic
// shape elsewhere in the search is a hit instead of a full recursion.
func (e *Engine) maybeStoreExact(g *core.SubGraph, lower, upper, root int) {
	if lower != upper || g.N() == 0 || g.N() > e.cfg.SmallN {
		return
	}
	if rootLocal, ok := g.Local(root); ok {
		e.exact.Store(adjSlices(g), upper, rootLocal)
	}
}

func density(h *core.SubGraph) float64 {
	if h.N() == 0 {
		return 0
	}
	return float64(h.M()) / float64(h.N())
}

func sortByCost(g *core.SubGraph, batch [][]int) {
	sort.Slice(batch, func(i, j int) bool {
		return largestComponentDensity(g, batch[i]) < largestComponentDensity(g, batch[j])
	})
}

func largestComponentDensity(g *core.SubGraph, S []int) float64 {
	localS := make([]int, 0, len(S))
	for _, gid := range S {
		if l, ok := g.Local(gid); ok {
			localS = append(localS, l)
		}
	}
	comps := g.WithoutVertices(localS)
	var largest *core.SubGraph
	for _, c := range comps {
		if largest == nil || c.N() > largest.N() {
			largest = c
		}
	}
	if largest == nil {
		return 0
	}
	return density(largest)
}

func adjSlices(g *core.SubGraph) [][]int {
	adj := make([][]int, g.N())
	for v := 0; v < g.N(); v++ {
		adj[v] = g.Adj(v)
	}
	return adj
}

func (e *Engine) reconstruct(ctx context.Context, g *core.SubGraph, parentGlobal int, out map[int]int, depthBudget int) error {
	if g.N() == 1 {
		out[g.Global(0)] = parentGlobal
		return nil
	}
	if err := e.checkDeadline(ctx); err != nil {
		return err
	}
	node := e.cache.Search(g.Word())
	if node == nil || node.Record.Root == settrie.NONE {
		if _, _, _, err := e.Calculate(ctx, g, depthBudget, g.N()); err != nil {
			return err
		}
		node = e.cache.Search(g.Word())
	}
	if node == nil || node.Record.Root == settrie.NONE {
		return ErrInternalInvariant
	}

	witness := node.Record.Root
	out[witness] = parentGlobal
	localWitness, ok := g.Local(witness)
	if !ok {
		return ErrInternalInvariant
	}
	for _, comp := range g.WithoutVertex(localWitness) {
		if err := e.reconstruct(ctx, comp, witness, out, depthBudget-1); err != nil {
			return err
		}
	}
	return nil
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
