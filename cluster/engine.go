// Package cluster runs the shared merge pipeline under a termination Policy.
package cluster

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/circuits/point"
	"go.uber.org/zap"
)

// TopComponents is how many of the largest components Bounded multiplies.
const TopComponents = 3

// Engine holds the nodes and their ordered edge list. It is read-only after
// NewEngine returns; every Run allocates its own labels.
type Engine struct {
	nodes []point.Node
	edges []Edge
	opts  Options
}

// NewEngine copies nodes, generates the complete edge list and sorts it.
//
// When pruning is enabled, edges longer than Options.MaxDistance and edges with
// a NaN distance of either sign are dropped after sorting; survivors keep their order.
// Returns ErrUnknownStrategy for an unsupported merge strategy.
//
// Complexity: O(n² log n) time, O(n²) memory.
func NewEngine(nodes []point.Node, opts ...Option) (*Engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if _, err := ParseStrategy(string(o.Strategy)); err != nil {
		return nil, err
	}

	owned := make([]point.Node, len(nodes))
	copy(owned, nodes)

	// 1. Build the complete graph and order it once for every later run.
	edges := GenerateEdges(owned)
	SortEdges(edges)

	// 2. Prune over the whole slice: a NaN with its sign bit set sorts first.
	if o.MaxDistance > 0 {
		edges = slices.DeleteFunc(edges, func(e Edge) bool {
			return math.IsNaN(e.Distance) || e.Distance > o.MaxDistance
		})
	}

	o.Logger.Debug("cluster engine built",
		zap.Int("nodes", len(owned)),
		zap.Int("edges", len(edges)),
		zap.String("strategy", string(o.Strategy)),
		zap.Float64("max_distance", o.MaxDistance))

	return &Engine{nodes: owned, edges: edges, opts: o}, nil
}

// Nodes returns a copy of the engine's nodes.
func (e *Engine) Nodes() []point.Node {
	out := make([]point.Node, len(e.nodes))
	copy(out, e.nodes)

	return out
}

// Edges returns a copy of the ordered edge list.
func (e *Engine) Edges() []Edge {
	out := make([]Edge, len(e.edges))
	copy(out, e.edges)

	return out
}

// Run replays the ordered edges from the start under policy p.
//
// Steps:
//  1. Reject an empty node set (ErrNoNodes).
//  2. Start every node in its own component.
//  3. KindBounded: validate 0 ≤ k ≤ len(edges), then merge on each of the first k
//     edges whether redundant or not.
//  4. KindUntilConnected: merge edge by edge and stop at the first edge after
//     which a single component remains. A single node is connected before any
//     edge and has no closing edge. Running out of edges is ErrDisconnected.
//  5. Record the final label of every node.
func (e *Engine) Run(p Policy) (Result, error) {
	// 1. An empty node set has no component sizes to report.
	n := len(e.nodes)
	if n == 0 {
		return Result{}, ErrNoNodes
	}

	// 2. Fresh labels per run; the ordered edges are shared and read-only.
	m, err := newMerger(e.opts.Strategy, n)
	if err != nil {
		return Result{}, err
	}

	res := Result{Policy: p}
	switch p.Kind {
	case KindBounded:
		// 3. k is a caller contract: never clamp, never wrap.
		if p.Count < 0 || p.Count > len(e.edges) {
			return Result{}, fmt.Errorf("k=%d, edges=%d: %w", p.Count, len(e.edges), ErrIterationsOutOfRange)
		}
		// Redundant edges still count towards k.
		for _, edge := range e.edges[:p.Count] {
			if m.Merge(edge.A, edge.B) {
				res.Merges++
			}
		}
		res.Consumed = p.Count
		res.Connected = m.Count() == 1

	case KindUntilConnected:
		// 4. A single node is connected before any edge is read.
		res.Connected = m.Count() == 1
		for i := 0; i < len(e.edges) && !res.Connected; i++ {
			edge := e.edges[i]
			res.Consumed++
			if m.Merge(edge.A, edge.B) {
				res.Merges++
			}
			// The first edge that leaves one component is the closing edge.
			if m.Count() == 1 {
				res.Connected = true
				res.Closing = &edge
			}
		}
		if !res.Connected {
			return Result{}, fmt.Errorf("%d components left after %d edges: %w", m.Count(), res.Consumed, ErrDisconnected)
		}

	default:
		return Result{}, fmt.Errorf("%v: %w", p.Kind, ErrUnknownPolicy)
	}

	// 5. Snapshot labels before the merger is discarded.
	res.Labels = make([]int, n)
	for i := range res.Labels {
		res.Labels[i] = m.Label(i)
	}

	e.opts.Logger.Debug("cluster run finished",
		zap.Stringer("policy", res.Policy.Kind),
		zap.Int("consumed", res.Consumed),
		zap.Int("merges", res.Merges),
		zap.Int("components", m.Count()),
		zap.Bool("connected", res.Connected))

	return res, nil
}

// Bounded consumes the first k ordered edges and returns the product of the
// three largest component sizes (fewer when fewer components exist).
func (e *Engine) Bounded(k int) (uint64, error) {
	res, err := e.Run(BoundedCount(k))
	if err != nil {
		return 0, err
	}

	return res.LargestProduct(TopComponents), nil
}

// FullyConnected consumes ordered edges until every node shares one component
// and returns the product of the closing edge's endpoint X coordinates.
// A single node has no closing edge; the result is then 0.
func (e *Engine) FullyConnected() (float64, error) {
	res, err := e.Run(UntilFullyConnected())
	if err != nil {
		return 0, err
	}
	if res.Closing == nil {
		return 0, nil
	}

	return e.nodes[res.Closing.A].X * e.nodes[res.Closing.B].X, nil
}

// Bounded builds an Engine over nodes and calls its Bounded method.
func Bounded(nodes []point.Node, k int, opts ...Option) (uint64, error) {
	e, err := NewEngine(nodes, opts...)
	if err != nil {
		return 0, err
	}

	return e.Bounded(k)
}

// FullyConnected builds an Engine over nodes and calls its FullyConnected method.
func FullyConnected(nodes []point.Node, opts ...Option) (float64, error) {
	e, err := NewEngine(nodes, opts...)
	if err != nil {
		return 0, err
	}

	return e.FullyConnected()
}
