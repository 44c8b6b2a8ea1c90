// Package ioformat reads the textual "p tdp N M" graph format and writes
// the treedepth/parent-array result format, and splits a possibly
// disconnected input graph into the connected components the engine
// requires.
package ioformat

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/treedepth/core"
)

// ErrMalformedInput is returned by Parse when the header or edge list does
// not match the "p tdp N M" format.
var ErrMalformedInput = errors.New("ioformat: malformed input")

// ErrSelfLoop is returned by Parse when an edge line names the same vertex
// twice. Self-loops are rejected outright, unlike multi-edges, which are
// silently discarded.
var ErrSelfLoop = errors.New("ioformat: self-loop not allowed")

// Parse reads a "p tdp N M" graph from r: a header line, then M edge lines
// each "a b" (1-based vertex indices). Multi-edges are discarded silently;
// a self-loop edge is rejected with an error wrapping both ErrMalformedInput
// and ErrSelfLoop.
func Parse(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	next := func() (string, bool) {
		if sc.Scan() {
			return sc.Text(), true
		}
		return "", false
	}
	nextInt := func() (int, error) {
		tok, ok := next()
		if !ok {
			return 0, fmt.Errorf("%w: unexpected end of input", ErrMalformedInput)
		}
		var v int
		if _, err := fmt.Sscanf(tok, "%d", &v); err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformedInput, tok)
		}
		return v, nil
	}

	p, ok := next()
	if !ok || p != "p" {
		return nil, fmt.Errorf("%w: missing \"p\" header token", ErrMalformedInput)
	}
	tdp, ok := next()
	if !ok || tdp != "tdp" {
		return nil, fmt.Errorf("%w: missing \"tdp\" header token", ErrMalformedInput)
	}
	n, err := nextInt()
	if err != nil {
		return nil, err
	}
	m, err := nextInt()
	if err != nil {
		return nil, err
	}
	if n < 0 || m < 0 {
		return nil, fmt.Errorf("%w: negative N or M", ErrMalformedInput)
	}

	g := core.NewGraph(n)
	for i := 0; i < m; i++ {
		a, err := nextInt()
		if err != nil {
			return nil, err
		}
		b, err := nextInt()
		if err != nil {
			return nil, err
		}
		a--
		b--
		if a < 0 || a >= n || b < 0 || b >= n {
			return nil, fmt.Errorf("%w: edge (%d,%d) out of range", ErrMalformedInput, a+1, b+1)
		}
		if err := g.AddEdge(a, b); err != nil {
			if errors.Is(err, core.ErrSelfLoop) {
				return nil, fmt.Errorf("%w: %w at vertex %d", ErrMalformedInput, ErrSelfLoop, a+1)
			}
			return nil, err
		}
	}
	return g, nil
}

// Components decomposes g into its connected components, each as its own
// SubGraph over g's original global ids, in ascending minimum-global-id
// order. The engine requires a connected input; a disconnected graph must
// be solved one component at a time.
func Components(g *core.Graph) []*core.SubGraph {
	whole := g.AsSubGraph()
	all := make([]int, whole.N())
	for i := range all {
		all[i] = i
	}
	return whole.ConnectedComponents(all)
}

// WriteResult writes the treedepth td followed by N lines, one per global
// vertex id 0..N-1 in ascending order: the 1-based parent id, or 0 if the
// vertex is a root. parent must map every id in 0..n-1 to its parent's
// global id, using NONE (-1) for a root.
func WriteResult(w io.Writer, n int, td int, parent map[int]int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, td); err != nil {
		return err
	}
	for v := 0; v < n; v++ {
		p, ok := parent[v]
		if !ok {
			return fmt.Errorf("ioformat: missing parent entry for vertex %d", v+1)
		}
		if p < 0 {
			if _, err := fmt.Fprintln(bw, 0); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintln(bw, p+1); err != nil {
			return err
		}
	}
	return bw.Flush()
}
