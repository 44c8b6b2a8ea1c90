package ioformat_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treedepth/ioformat"
)

func TestParseWellFormedGraph(t *testing.T) {
	in := "p tdp 3 2\n1 2\n2 3\n"
	g, err := ioformat.Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 3, g.N())
	require.Equal(t, 2, g.M())
}

func TestParseRejectsBadHeader(t *testing.T) {
	_, err := ioformat.Parse(strings.NewReader("x y 3 2\n1 2\n2 3\n"))
	require.ErrorIs(t, err, ioformat.ErrMalformedInput)
}

func TestParseRejectsSelfLoop(t *testing.T) {
	_, err := ioformat.Parse(strings.NewReader("p tdp 2 1\n1 1\n"))
	require.ErrorIs(t, err, ioformat.ErrMalformedInput)
	require.ErrorIs(t, err, ioformat.ErrSelfLoop)
}

func TestParseDiscardsMultiEdge(t *testing.T) {
	g, err := ioformat.Parse(strings.NewReader("p tdp 2 2\n1 2\n1 2\n"))
	require.NoError(t, err)
	require.Equal(t, 1, g.M(), "multi-edge should be discarded")
}

func TestComponentsSplitsDisconnectedGraph(t *testing.T) {
	g, err := ioformat.Parse(strings.NewReader("p tdp 4 2\n1 2\n3 4\n"))
	require.NoError(t, err)
	comps := ioformat.Components(g)
	require.Len(t, comps, 2)
	require.Equal(t, 2, comps[0].N())
	require.Equal(t, 2, comps[1].N())
}

func TestWriteResultFormat(t *testing.T) {
	var buf bytes.Buffer
	parent := map[int]int{0: -1, 1: 0, 2: 0}
	require.NoError(t, ioformat.WriteResult(&buf, 3, 2, parent))
	require.Equal(t, "2\n0\n1\n1\n", buf.String())
}
