package dfs_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathcount/core"
	"github.com/katalvlaran/pathcount/dfs"
)

// position returns index of v in slice or -1 if not found
func position(order []string, v string) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

// build registers every endpoint and edge on a fresh directed graph.
func build(t testing.TB, edges [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range edges {
		require.NoError(t, g.AddVertex(e[0]))
		require.NoError(t, g.AddVertex(e[1]))
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// chain returns the edges of v[0]→v[1]→…→v[n-1].
func chain(vs ...string) [][2]string {
	var out [][2]string
	for i := 0; i+1 < len(vs); i++ {
		out = append(out, [2]string{vs[i], vs[i+1]})
	}

	return out
}

// TestTopo_NilGraph verifies that passing a nil graph returns ErrGraphNil.
func TestTopo_NilGraph(t *testing.T) {
	order, err := dfs.TopologicalSort(nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

// TestTopo_UndirectedGraph ensures TopologicalSort rejects undirected graphs.
func TestTopo_UndirectedGraph(t *testing.T) {
	g := core.NewGraph() // undirected by default
	_, err := dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrUndirected)
	assert.Contains(t, err.Error(), "requires directed graph")
}

// TestTopo_EmptyGraph covers a directed graph with no vertices.
func TestTopo_EmptyGraph(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	order, err := dfs.TopologicalSort(g)
	assert.NoError(t, err)
	assert.Empty(t, order)
}

// TestTopo_NoEdges checks that a directed graph with vertices but no edges
// can be sorted in any order.
func TestTopo_NoEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_ = g.AddVertex("A")
	_ = g.AddVertex("B")
	_ = g.AddVertex("C")

	order, err := dfs.TopologicalSort(g)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B", "C"}, order)
}

// TestTopo_SimpleChain verifies linear chain A→B→C yields [A,B,C].
func TestTopo_SimpleChain(t *testing.T) {
	g := build(t, chain("A", "B", "C"))

	order, err := dfs.TopologicalSort(g)
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, order)
}

// TestTopo_BranchingDAG checks a DAG with A→B and A→C: A must come first,
// B and C in any order afterward.
func TestTopo_BranchingDAG(t *testing.T) {
	g := build(t, [][2]string{{"A", "B"}, {"A", "C"}})

	order, err := dfs.TopologicalSort(g)
	assert.NoError(t, err)
	assert.Equal(t, "A", order[0])
	assert.ElementsMatch(t, []string{"B", "C"}, order[1:])
}

// TestTopo_DisconnectedLarge ensures two disjoint chains keep their
// internal order.
func TestTopo_DisconnectedLarge(t *testing.T) {
	chain1 := []string{"1", "2", "3", "4"}
	chain2 := []string{"A", "B", "C", "D", "E"}
	g := build(t, append(chain(chain1...), chain(chain2...)...))

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Len(t, order, len(chain1)+len(chain2))
	for _, c := range [][]string{chain1, chain2} {
		for i := 0; i+1 < len(c); i++ {
			assert.Less(t, position(order, c[i]), position(order, c[i+1]),
				"%s should precede %s", c[i], c[i+1])
		}
	}
}

// TestTopo_ComplexDAG builds a DAG of 10 vertices with cross-links and ensures validity.
func TestTopo_ComplexDAG(t *testing.T) {
	edges := [][2]string{
		{"V1", "V3"}, {"V1", "V2"}, {"V2", "V5"}, {"V3", "V5"},
		{"V2", "V4"}, {"V4", "V6"}, {"V5", "V7"}, {"V6", "V8"},
		{"V7", "V9"}, {"V8", "V10"},
	}
	g := build(t, edges)

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Len(t, order, 10)
	for _, e := range edges {
		assert.Less(t, position(order, e[0]), position(order, e[1]),
			"edge %s→%s should be respected", e[0], e[1])
	}
}

// TestTopo_CycleDetection uses a 6-node cycle to verify ErrCycleDetected.
func TestTopo_CycleDetection(t *testing.T) {
	g := build(t, chain("a", "b", "c", "d", "e", "f", "a"))

	order, err := dfs.TopologicalSort(g)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
	assert.Contains(t, err.Error(), `"f" -> "a"`)
}

// TestTopo_SelfLoop treats a self-loop as a cycle.
func TestTopo_SelfLoop(t *testing.T) {
	g := build(t, [][2]string{{"A", "B"}, {"B", "B"}})
	_, err := dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

// TestTopo_DeepChain sorts a chain deep enough to exhaust a recursive walk
// on small stacks.
func TestTopo_DeepChain(t *testing.T) {
	const n = 100000
	vs := make([]string, n)
	for i := range vs {
		vs[i] = fmt.Sprintf("n%06d", i)
	}
	g := build(t, chain(vs...))
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, vs, order)
}

// TestTopo_Canceled verifies cancellation is honoured once traversal
// discovers a second vertex.
func TestTopo_Canceled(t *testing.T) {
	g := build(t, chain("A", "B", "C"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.TopologicalSort(g, dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsAcyclic(t *testing.T) {
	ok, err := dfs.IsAcyclic(build(t, chain("A", "B", "C")))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = dfs.IsAcyclic(build(t, chain("A", "B", "A")))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = dfs.IsAcyclic(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.IsAcyclic(core.NewGraph())
	assert.ErrorIs(t, err, dfs.ErrUndirected)
}
