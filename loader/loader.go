// Package loader turns `LABEL: DEST1 DEST2 ...` records into a core.Graph.
//
// The input is any io.Reader, so callers decide where the data comes from
// (a file, stdin, an embedded fixture). Each non-blank line holds one record:
// the origin label before the first ':' and zero or more destination labels
// after it, separated by whitespace.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/pathcount/core"
)

// ErrMalformedLine indicates a line without ':' or with an empty origin.
var ErrMalformedLine = errors.New("loader: malformed line")

// LineError reports the 1-based line number of a malformed record.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error { return e.Err }

// Record is one tokenized input line.
type Record struct {
	Origin       string
	Destinations []string
}

// Decode reads every record from r.
// Blank lines are skipped. Surrounding whitespace around labels is ignored.
func Decode(r io.Reader) ([]Record, error) {
	var recs []Record
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		origin, rest, ok := strings.Cut(text, ":")
		origin = strings.TrimSpace(origin)
		if !ok || origin == "" {
			return nil, &LineError{Line: line, Text: text, Err: ErrMalformedLine}
		}
		recs = append(recs, Record{Origin: origin, Destinations: strings.Fields(rest)})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: read input: %w", err)
	}

	return recs, nil
}

// Build registers the records on g: the origin, then for each destination
// the destination vertex followed by the edge origin→destination.
func Build(g *core.Graph, recs []Record) error {
	for _, rec := range recs {
		if err := g.AddVertex(rec.Origin); err != nil {
			return err
		}
		for _, dest := range rec.Destinations {
			if err := g.AddVertex(dest); err != nil {
				return err
			}
			if err := g.AddEdge(rec.Origin, dest); err != nil {
				return err
			}
		}
	}

	return nil
}

// Load decodes r and builds a directed graph from it.
// opts are applied after WithDirected(true) and may override it.
func Load(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	recs, err := Decode(r)
	if err != nil {
		return nil, err
	}
	g := core.NewGraph(append([]core.GraphOption{core.WithDirected(true)}, opts...)...)
	if err := Build(g, recs); err != nil {
		return nil, err
	}

	return g, nil
}
