// Package main is the entry point for the pathcount CLI.
//
// Usage:
//
//	pathcount [flags] <command> [flags]
//
// Commands:
//
//	count  - Count walks between two vertices, optionally through waypoints
//	run    - Run the queries of a YAML config (default: you⇝out, svr⇝out via fft,dac)
//	check  - Validate that the input graph is acyclic
//	reach  - Report whether and how one vertex reaches another
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/pathcount/cmd/pathcount/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
