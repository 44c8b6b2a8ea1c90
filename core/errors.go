package core

import "errors"

// ErrSelfLoop is returned by AddEdge when both endpoints are identical.
var ErrSelfLoop = errors.New("core: self-loop not allowed")

// ErrVertexOutOfRange is returned when an operation references a vertex
// index outside the valid range for the graph or subgraph it is called on.
var ErrVertexOutOfRange = errors.New("core: vertex index out of range")
