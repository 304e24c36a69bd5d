// SPDX-License-Identifier: MIT
// Package core defines the Graph type, its options and sentinel errors.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex label is the empty string.
//	ErrMissingVertex   - requested vertex does not exist.
//	ErrCycleDetected   - path counting entered a cycle.
//	ErrUndirectedGraph - path counting requires a directed graph.
package core

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/pathcount/hashtable"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex label is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrMissingVertex indicates an operation referenced an unregistered vertex.
	ErrMissingVertex = errors.New("core: vertex not found")

	// ErrCycleDetected indicates that path counting walked into a cycle.
	ErrCycleDetected = errors.New("core: cycle detected")

	// ErrUndirectedGraph indicates path counting was requested on an undirected graph.
	ErrUndirectedGraph = errors.New("core: path counting requires directed graph")
)

// ErrVertexNotFound is an alias of ErrMissingVertex.
var ErrVertexNotFound = ErrMissingVertex

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the orientation of all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLogger sets the logger used to report rejected edges.
// A nil logger has no effect.
func WithLogger(l *slog.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// Graph is a labelled graph with dense integer vertex ids.
//
// ids resolves label → id; labels is the reverse, dense array.
// adjacency[id] lists neighbour ids in insertion order, without repeats.
// edges counts adjacency entries (mirrors included).
type Graph struct {
	directed bool
	logger   *slog.Logger

	ids       *hashtable.Table
	labels    []string
	adjacency [][]int
	edges     int
	loops     int // self-loops, counted once in both modes
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected and logs through slog.Default().
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		logger: slog.Default(),
		ids:    hashtable.New(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }
