// Package dfs provides topological sort on directed core graphs.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering.
// If the graph contains a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (explicit stack and state slice)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/pathcount/core"
)

// frame is one vertex on the explicit DFS stack.
type frame struct {
	id   int   // vertex id
	adj  []int // successor ids (copy)
	next int   // index of the next successor to visit
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph // the graph being sorted
	opts  topoOptions // traversal options (cancellation)
	state []int       // visitation state by id: White, Gray, Black
	order []int       // recorded post-order sequence of ids
}

// TopologicalSort computes a topological ordering of all vertices in g.
// If g is nil, returns ErrGraphNil.
// If g is undirected, returns ErrUndirected.
// If a cycle is detected, returns ErrCycleDetected naming the back edge.
// You may pass WithCancelContext(ctx) to enable cancellation.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	ids, err := topoOrder(g, options...)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i], _ = g.Label(id)
	}

	return out, nil
}

// IsAcyclic reports whether g has no directed cycle.
// Errors other than ErrCycleDetected are returned as-is.
func IsAcyclic(g *core.Graph, options ...TopoOption) (bool, error) {
	_, err := topoOrder(g, options...)
	if err == nil {
		return true, nil
	}
	if isCycle(err) {
		return false, nil
	}

	return false, err
}

// topoOrder returns vertex ids in topological order.
func topoOrder(g *core.Graph, options ...TopoOption) ([]int, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Only directed graphs are supported
	if !g.Directed() {
		return nil, ErrUndirected
	}
	// 3. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 4. Initialize sorter state
	n := g.VertexCount()
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make([]int, n),    // all vertices start as White (0)
		order: make([]int, 0, n), // capacity hint for post-order
	}
	// 5. Drive DFS from every unvisited vertex, in id order
	for id := 0; id < n; id++ {
		if sorter.state[id] == White {
			if err := sorter.visit(id); err != nil {
				return nil, err
			}
		}
	}
	// 6. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit runs an iterative DFS from root, marking states and detecting cycles.
// Cancellation is checked each time a vertex is discovered.
func (t *topoSorter) visit(root int) error {
	stack := []frame{t.enter(root)}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.adj) {
			w := top.adj[top.next]
			top.next++
			switch t.state[w] {
			case Gray:
				// back edge: w is still on the stack
				from, _ := t.graph.Label(top.id)
				to, _ := t.graph.Label(w)
				return fmt.Errorf("%w: %q -> %q", ErrCycleDetected, from, to)
			case White:
				select {
				case <-t.opts.ctx.Done():
					return t.opts.ctx.Err()
				default:
				}
				stack = append(stack, t.enter(w))
			}
			continue
		}
		// all successors finished
		t.state[top.id] = Black
		t.order = append(t.order, top.id)
		stack = stack[:len(stack)-1]
	}

	return nil
}

// enter marks id Gray and builds its stack frame.
func (t *topoSorter) enter(id int) frame {
	t.state[id] = Gray

	return frame{id: id, adj: t.graph.SuccessorIDs(id)}
}
