// File: methods_edges.go
// Role: Edge registration & adjacency queries.
//
// Determinism:
//   - Adjacency lists keep insertion order; Successors/SuccessorIDs return
//     neighbours in the order their edges were added.
package core

import "fmt"

// AddEdge registers the edge origin→destination.
//
// Implementation:
//   - Stage 1: Resolve both labels. A missing label is reported through the
//     graph logger and returned as ErrMissingVertex; nothing is mutated.
//   - Stage 2: Skip the edge when destination already follows origin.
//   - Stage 3: Append destination to origin's list and, in undirected mode,
//     origin to destination's list unless origin == destination.
//
// Errors:
//   - ErrMissingVertex (wrapped with the side and label) when either endpoint
//     is unregistered.
//
// Complexity:
//   - Time O(deg(origin)) for the duplicate scan, Space O(1) amortized.
func (g *Graph) AddEdge(origin, destination string) error {
	// 1) Resolve endpoints
	u, ok := g.ids.Lookup(origin)
	if !ok {
		return g.rejectEdge(origin, destination, "origin", origin)
	}
	v, ok := g.ids.Lookup(destination)
	if !ok {
		return g.rejectEdge(origin, destination, "destination", destination)
	}

	// 2) Duplicate suppression
	if containsID(g.adjacency[u], v) {
		return nil
	}

	// 3) Link
	g.adjacency[u] = append(g.adjacency[u], v)
	g.edges++
	if u == v {
		g.loops++
		return nil
	}
	if !g.directed {
		g.adjacency[v] = append(g.adjacency[v], u)
		g.edges++
	}

	return nil
}

// rejectEdge logs and builds the MissingVertex error for AddEdge.
func (g *Graph) rejectEdge(origin, destination, side, label string) error {
	g.logger.Warn("edge rejected: vertex not registered",
		"origin", origin,
		"destination", destination,
		"side", side,
	)

	return fmt.Errorf("%w: %s %q", ErrMissingVertex, side, label)
}

// HasEdge reports whether destination is adjacent from origin.
// In undirected mode both orientations report true.
// Complexity: O(deg(origin)).
func (g *Graph) HasEdge(origin, destination string) bool {
	u, ok := g.ids.Lookup(origin)
	if !ok {
		return false
	}
	v, ok := g.ids.Lookup(destination)
	if !ok {
		return false
	}

	return containsID(g.adjacency[u], v)
}

// EdgeCount returns the number of logical edges.
//
// In undirected mode a mirrored pair counts once; self-loops are stored once
// and count once in both modes.
func (g *Graph) EdgeCount() int {
	if g.directed {
		return g.edges
	}

	return (g.edges-g.loops)/2 + g.loops
}

// Successors returns the labels adjacent from label, in insertion order.
func (g *Graph) Successors(label string) ([]string, error) {
	u, ok := g.ids.Lookup(label)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingVertex, label)
	}
	out := make([]string, len(g.adjacency[u]))
	for i, v := range g.adjacency[u] {
		out[i] = g.labels[v]
	}

	return out, nil
}

// SuccessorIDs returns a copy of the adjacency list of id.
// An out-of-range id yields nil.
func (g *Graph) SuccessorIDs(id int) []int {
	if id < 0 || id >= len(g.adjacency) {
		return nil
	}
	out := make([]int, len(g.adjacency[id]))
	copy(out, g.adjacency[id])

	return out
}

// containsID reports whether list holds id.
func containsID(list []int, id int) bool {
	for _, x := range list {
		if x == id {
			return true
		}
	}

	return false
}
