// Package bfs implements breadth-first search over a core.Graph: hop
// distances, parent links and reachability checks between labelled vertices.
//
// What:
//
//   - BFS explores vertices in increasing hop distance from a start vertex,
//     following adjacency order, and records visit order, depth and parent.
//   - Reachable answers "is there any directed walk from a to b?" without
//     counting walks, and works on cyclic graphs.
//
// Why:
//
//   - core.Graph.CountPaths returns 0 both for "no walk" and "unknown label";
//     Reachable and BFS let callers tell the cases apart and show the
//     shortest witness path.
//
// Options:
//
//   - WithContext(ctx)  cancellation, checked once per dequeued vertex
//   - WithMaxDepth(d)   d > 0 limits depth, 0 means unlimited, d < 0 is invalid
//
// Complexity:
//
//   - Time O(V+E), Memory O(V).
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start label not registered
//   - ErrOptionViolation      invalid option value
//   - context.Canceled        traversal canceled
package bfs
