// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
package bfs

import (
	"context"

	"github.com/katalvlaran/pathcount/core"
)

// queueItem pairs a vertex id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or the context error on cancellation.
func BFS(g *core.Graph, start string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	sid, ok := g.ID(start)
	if !ok {
		return nil, ErrStartVertexNotFound
	}

	// Prepare walker
	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(sid, 0, -1)

	return w.res, w.loop()
}

// Reachable reports whether a directed walk leads from origin to destination.
// Unregistered labels are unreachable, not errors; a vertex reaches itself.
func Reachable(g *core.Graph, origin, destination string, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.HasVertex(origin) || !g.HasVertex(destination) {
		return false, nil
	}
	res, err := BFS(g, origin, opts...)
	if err != nil {
		return false, err
	}
	_, ok := res.Depth[destination]

	return ok, nil
}

// enqueue marks id visited at depth d, records its parent and queues it.
func (w *walker) enqueue(id, d, parent int) {
	w.visited[id] = true
	label, _ := w.graph.Label(id)
	w.res.Depth[label] = d
	if parent >= 0 {
		w.res.Parent[label], _ = w.graph.Label(parent)
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		label, _ := w.graph.Label(item.id)
		w.res.Order = append(w.res.Order, label)

		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.graph.SuccessorIDs(item.id) {
			if !w.visited[nbr] {
				w.enqueue(nbr, nextDepth, item.id)
			}
		}
	}

	return nil
}
