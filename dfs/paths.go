package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathcount/core"
)

// PathCounts returns, for every vertex v of g, the number of directed walks
// from v to destination.
//
// The recurrence matches core.Graph.CountPaths: the destination counts 1 and
// is not expanded further; any other vertex sums its successors. Values are
// filled in reverse topological order, so every successor is final before
// its predecessors read it.
//
// Unlike CountPaths, the whole graph must be acyclic, because the ordering is
// computed for all vertices. Errors:
//   - ErrGraphNil, ErrUndirected, ErrCycleDetected as TopologicalSort.
//   - core.ErrMissingVertex (wrapped) if destination is not registered.
//
// Complexity: Time O(V+E), Memory O(V).
func PathCounts(g *core.Graph, destination string, options ...TopoOption) (map[string]int64, error) {
	order, err := topoOrder(g, options...)
	if err != nil {
		return nil, err
	}
	target, ok := g.ID(destination)
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrMissingVertex, destination)
	}

	counts := make([]int64, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		if v == target {
			counts[v] = 1
			continue
		}
		var total int64
		for _, w := range g.SuccessorIDs(v) {
			total += counts[w]
		}
		counts[v] = total
	}

	out := make(map[string]int64, len(counts))
	for id, n := range counts {
		label, _ := g.Label(id)
		out[label] = n
	}

	return out, nil
}

// isCycle reports whether err stems from a back edge.
func isCycle(err error) bool {
	return errors.Is(err, ErrCycleDetected)
}
