// Package core provides the labelled directed graph used by pathcount and its
// path-counting engine.
//
// The Graph G = (V,E) keeps:
//
//   - A label registry: every vertex label maps to a dense id 0..n-1, assigned
//     in order of first appearance. The label → id direction lives in a
//     hashtable.Table; the id → label direction is a plain slice.
//   - Adjacency lists indexed by id. A source never lists the same neighbour
//     twice; a repeated AddEdge is a no-op.
//   - Optional undirected mode (the default, as WithDirected(false)) which
//     mirrors every non-loop edge.
//
// Vertices and edges are never removed; ids are never reused.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    Directed graphs store only origin→destination.
//	    Undirected graphs also store destination→origin (except self-loops).
//
//	– WithLogger(l *slog.Logger)
//	    Destination for MissingVertex reports from AddEdge (default slog.Default()).
//
// Core Methods:
//
//	// Registration
//	AddVertex(label string) error                 // O(1) expected
//	AddEdge(origin, destination string) error     // O(deg(origin))
//
//	// Query
//	HasVertex(label string) bool                  // O(1) expected
//	HasEdge(origin, destination string) bool      // O(deg(origin))
//	ID(label string) (int, bool)                  // O(1) expected
//	Label(id int) (string, bool)                  // O(1)
//	Vertices() []string                           // O(V), id order
//	Successors(label string) ([]string, error)    // O(deg)
//	SuccessorIDs(id int) []int                    // O(deg), copy
//	VertexCount() int                             // O(1)
//	EdgeCount() int                               // O(1)
//
//	// Path counting (DAG precondition)
//	CountPaths(origin, destination string) (int64, error)                       // O(V+E)
//	CountPathsWithWaypoints(origin, destination string, waypoints []string) (int64, error) // O(k·(V+E))
//
// Path counting:
//
//	paths(v) = 1                         if v == destination
//	paths(v) = Σ paths(w) for v→w        otherwise
//
// The recurrence is evaluated with an explicit stack and a per-call memo
// table sized to VertexCount(), so deep graphs do not grow the goroutine
// stack. The graph must be acyclic along every walk leaving the origin
// before the destination is reached; if the walk closes a cycle, counting
// stops with ErrCycleDetected rather than guessing an answer. Use
// dfs.TopologicalSort to validate a graph up front.
//
// Counts are int64. Products across waypoint segments are not checked for
// overflow.
//
// Errors:
//
//	ErrEmptyVertexID   – zero-length label
//	ErrMissingVertex   – AddEdge/Successors referenced an unregistered label
//	ErrCycleDetected   – counting walked into a cycle
//	ErrUndirectedGraph – counting requested on an undirected graph
//
// A Graph is not safe for concurrent use.
package core
