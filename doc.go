// Package pathcount counts directed walks in labelled acyclic graphs, with
// and without ordered mandatory waypoints.
//
// What is inside?
//
//	hashtable/ - string → int store: DJB2, separate chaining, doubling at load 0.75
//	core/      - labelled Graph with dense ids, duplicate-free adjacency, CountPaths
//	dfs/       - topological sort, acyclicity check, whole-graph walk counts
//	bfs/       - hop distances, shortest witness path, reachability
//	loader/    - `LABEL: DEST1 DEST2 ...` records from any io.Reader
//	config/    - YAML query files
//	cmd/pathcount - CLI: count, run, check, reach
//
// Quick ASCII example:
//
//	start ──► A ──► end
//	  │       │      ▲
//	  └─► B ◄─┘      │
//	      └──────────┘
//
// has three walks from start to end, two of them through B.
//
//	go install github.com/katalvlaran/pathcount/cmd/pathcount@latest
package pathcount
