// File: methods_paths.go
// Role: Walk counting between two vertices, with and without waypoints.
//
// Determinism:
//   - Neighbours are expanded in adjacency order; results do not depend on it.
package core

import "fmt"

// unknown marks a memo slot that has not been computed yet.
const unknown int64 = -1

// CountPaths returns the number of directed walks from origin to destination.
//
// Implementation:
//   - Stage 1: Unregistered origin or destination ⇒ 0.
//   - Stage 2: origin == destination ⇒ 1.
//   - Stage 3: Evaluate paths(v) = Σ paths(w) over v→w with an explicit stack,
//     memoizing per-vertex totals in a table sized to VertexCount().
//     The destination is never expanded; it contributes exactly 1.
//
// Errors:
//   - ErrUndirectedGraph when the graph is undirected.
//   - ErrCycleDetected (wrapped with the closing edge) when the walk reaches a
//     vertex that is still being expanded.
//
// Complexity:
//   - Time O(V+E), Space O(V).
func (g *Graph) CountPaths(origin, destination string) (int64, error) {
	if !g.directed {
		return 0, ErrUndirectedGraph
	}
	u, ok := g.ids.Lookup(origin)
	if !ok {
		return 0, nil
	}
	v, ok := g.ids.Lookup(destination)
	if !ok {
		return 0, nil
	}
	if u == v {
		return 1, nil
	}

	c := newPathCounter(g, v)

	return c.count(u)
}

// CountPathsWithWaypoints returns the number of walks from origin to
// destination that visit every waypoint in the given order.
//
// With no waypoints it equals CountPaths(origin, destination). Otherwise it is
// the product of CountPaths over origin→w1, w1→w2, …, wk→destination; the
// first zero segment short-circuits to 0. Overflow of the product is not
// detected.
func (g *Graph) CountPathsWithWaypoints(origin, destination string, waypoints []string) (int64, error) {
	if len(waypoints) == 0 {
		return g.CountPaths(origin, destination)
	}

	total := int64(1)
	from := origin
	for _, w := range waypoints {
		n, err := g.CountPaths(from, w)
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, nil
		}
		total *= n
		from = w
	}
	n, err := g.CountPaths(from, destination)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}

	return total * n, nil
}

// frame is one vertex being expanded on the counting stack.
type frame struct {
	id    int   // vertex id
	next  int   // index of the next neighbour to visit
	total int64 // walks found so far from id
}

// pathCounter holds per-call state for one destination.
type pathCounter struct {
	g       *Graph
	target  int
	memo    []int64 // id → walks to target, or unknown
	onStack []bool  // id is currently being expanded
}

func newPathCounter(g *Graph, target int) *pathCounter {
	memo := make([]int64, len(g.labels))
	for i := range memo {
		memo[i] = unknown
	}

	return &pathCounter{
		g:       g,
		target:  target,
		memo:    memo,
		onStack: make([]bool, len(g.labels)),
	}
}

// count evaluates paths(src). src must not be the target.
func (c *pathCounter) count(src int) (int64, error) {
	stack := []frame{{id: src}}
	c.onStack[src] = true

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		adj := c.g.adjacency[top.id]

		// 1. Visit the next neighbour, if any.
		if top.next < len(adj) {
			w := adj[top.next]
			top.next++
			switch {
			case w == c.target:
				top.total++
			case c.memo[w] != unknown:
				top.total += c.memo[w]
			case c.onStack[w]:
				return 0, fmt.Errorf("%w: %q -> %q", ErrCycleDetected, c.g.labels[top.id], c.g.labels[w])
			default:
				c.onStack[w] = true
				stack = append(stack, frame{id: w})
			}
			continue
		}

		// 2. All neighbours done: cache, pop, and fold into the parent.
		done := top.total
		c.memo[top.id] = done
		c.onStack[top.id] = false
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			stack[len(stack)-1].total += done
		}
	}

	return c.memo[src], nil
}
