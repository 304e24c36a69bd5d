// Package dfs implements depth-first topological ordering on a core.Graph and
// the checks built on it: acyclicity validation and whole-graph path counts.
//
// What:
//
//   - TopologicalSort: a linear ordering of the vertices of a directed graph
//     such that every edge u→v has u before v. Returns ErrCycleDetected when
//     no such ordering exists.
//   - IsAcyclic: reports whether TopologicalSort succeeds. core.Graph's
//     CountPaths assumes a DAG; call this first when the input is untrusted.
//   - PathCounts: for a destination d, the number of walks v⇝d for every
//     vertex v, by dynamic programming over reverse topological order.
//
// Why:
//
//   - Validate the DAG precondition once instead of discovering a cycle
//     halfway through a count.
//   - Answer "how many walks reach d" for every origin in a single O(V+E) pass.
//
// Traversal is iterative (explicit stack of frames), so depth is not bounded
// by the goroutine stack. Vertices are visited in id order and neighbours in
// adjacency order, which makes the output deterministic.
//
// Complexity:
//
//   - TopologicalSort: Time O(V+E), Memory O(V)
//   - PathCounts:      Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil        graph pointer is nil
//   - ErrUndirected      graph is not directed
//   - ErrCycleDetected   a back edge was found
//   - context.Canceled   traversal canceled via WithCancelContext
package dfs
