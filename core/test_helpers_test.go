// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.
package core_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathcount/core"
)

// Common vertex labels used across core tests.
const (
	VertexEmpty = ""

	VertexStart = "start"
	VertexEnd   = "end"
	VertexA     = "A"
	VertexB     = "B"
	VertexC     = "C"
	VertexX     = "X"
)

// edge is a directed pair used by buildGraph.
type edge struct{ From, To string }

// buildGraph registers every endpoint, then every edge, on a directed graph.
func buildGraph(t testing.TB, edges []edge, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(append([]core.GraphOption{core.WithDirected(true)}, opts...)...)
	for _, e := range edges {
		require.NoError(t, g.AddVertex(e.From))
		require.NoError(t, g.AddVertex(e.To))
		require.NoError(t, g.AddEdge(e.From, e.To))
	}

	return g
}

// diamond is the start/A/B/end fixture with the extra A→B chord:
// three walks from start to end.
func diamond() []edge {
	return []edge{
		{VertexStart, VertexA},
		{VertexStart, VertexB},
		{VertexA, VertexEnd},
		{VertexB, VertexEnd},
		{VertexA, VertexB},
	}
}

// layered builds a DAG of `layers` layers of `width` vertices where every
// vertex links to every vertex of the next layer, plus a source S and sink T.
// The number of S→T walks is width^layers.
func layered(t testing.TB, layers, width int) *core.Graph {
	t.Helper()
	var edges []edge
	name := func(l, i int) string { return fmt.Sprintf("L%d_%d", l, i) }
	for i := 0; i < width; i++ {
		edges = append(edges, edge{"S", name(0, i)})
		edges = append(edges, edge{name(layers-1, i), "T"})
	}
	for l := 0; l+1 < layers; l++ {
		for i := 0; i < width; i++ {
			for j := 0; j < width; j++ {
				edges = append(edges, edge{name(l, i), name(l+1, j)})
			}
		}
	}

	return buildGraph(t, edges)
}

// captureLogger returns a logger writing text records into buf.
func captureLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
