// File: methods_vertices.go
// Role: Vertex registration & label/id queries.
//
// Determinism:
//   - Ids are assigned 0..n-1 in order of first AddVertex.
//   - Vertices() returns labels in id order.
package core

// AddVertex registers label if it is not yet known (idempotent).
//
// Implementation:
//   - Stage 1: Reject the empty label (ErrEmptyVertexID).
//   - Stage 2: Return early when the label is already registered.
//   - Stage 3: Assign the next dense id, record both directions of the
//     mapping and extend the adjacency table by one empty list.
//
// Complexity:
//   - Time O(1) expected, Space O(1) amortized.
func (g *Graph) AddVertex(label string) error {
	if label == "" {
		return ErrEmptyVertexID
	}
	if g.ids.Contains(label) {
		return nil // no-op for existing vertex
	}

	id := len(g.labels)
	g.ids.Insert(label, id)
	g.labels = append(g.labels, label)
	g.adjacency = append(g.adjacency, nil)

	return nil
}

// HasVertex reports whether label is registered (empty label ⇒ false).
// Complexity: O(1) expected.
func (g *Graph) HasVertex(label string) bool {
	if label == "" {
		return false
	}

	return g.ids.Contains(label)
}

// ID returns the dense id of label.
func (g *Graph) ID(label string) (int, bool) {
	return g.ids.Lookup(label)
}

// Label returns the label registered under id.
func (g *Graph) Label(id int) (string, bool) {
	if id < 0 || id >= len(g.labels) {
		return "", false
	}

	return g.labels[id], true
}

// Vertices returns all labels in id order.
// The slice is a copy; mutating it does not affect the graph.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.labels))
	copy(out, g.labels)

	return out
}

// VertexCount returns the number of registered vertices.
func (g *Graph) VertexCount() int { return len(g.labels) }
