// Package cluster defines sentinel errors, edges, termination policies and engine options.
package cluster

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors for clustering runs.
var (
	// ErrNoNodes indicates an empty node set; no component sizes exist to multiply.
	ErrNoNodes = errors.New("cluster: no nodes")

	// ErrIterationsOutOfRange indicates a bounded count outside [0, len(edges)].
	ErrIterationsOutOfRange = errors.New("cluster: iteration count out of range")

	// ErrDisconnected indicates the ordered edges ran out before every node joined one component.
	ErrDisconnected = errors.New("cluster: graph is unexpectedly disconnected")

	// ErrUnknownPolicy indicates a Policy that is neither bounded nor until-connected.
	ErrUnknownPolicy = errors.New("cluster: unknown policy")

	// ErrUnknownStrategy indicates an unsupported merge strategy.
	ErrUnknownStrategy = errors.New("cluster: unknown merge strategy")
)

// Edge is an unordered pair of node indices with A < B and the Euclidean
// distance between the two nodes.
type Edge struct {
	A, B     int
	Distance float64
}

// PolicyKind tags the termination rule of a run.
type PolicyKind int

const (
	// KindBounded stops after a fixed number of consumed edges.
	KindBounded PolicyKind = iota

	// KindUntilConnected stops at the first edge that leaves a single component.
	KindUntilConnected
)

// String returns the policy name used in logs.
func (k PolicyKind) String() string {
	switch k {
	case KindBounded:
		return "bounded"
	case KindUntilConnected:
		return "until-connected"
	default:
		return fmt.Sprintf("PolicyKind(%d)", int(k))
	}
}

// Policy is the termination rule of one run. Build it with BoundedCount or
// UntilFullyConnected.
type Policy struct {
	Kind PolicyKind

	// Count is the number of edges to consume; used only by KindBounded.
	Count int
}

// BoundedCount consumes exactly k edges.
func BoundedCount(k int) Policy {
	return Policy{Kind: KindBounded, Count: k}
}

// UntilFullyConnected consumes edges until every node shares one component.
func UntilFullyConnected() Policy {
	return Policy{Kind: KindUntilConnected}
}

// Strategy selects the Merger implementation used by a run.
type Strategy string

const (
	// StrategyRelabel relabels every member of the absorbed component with a full scan.
	StrategyRelabel Strategy = "relabel"

	// StrategyUnionFind uses a disjoint-set forest.
	StrategyUnionFind Strategy = "union-find"
)

// ParseStrategy maps a name to a Strategy, returning ErrUnknownStrategy on failure.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyRelabel, StrategyUnionFind:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownStrategy)
	}
}

// Options configures an Engine.
//
// Fields:
//
//	Strategy    - merge implementation; StrategyRelabel by default.
//	MaxDistance - longer edges and NaN distances are dropped; 0 keeps every edge.
//	Logger      - debug sink; zap.NewNop() by default.
type Options struct {
	Strategy    Strategy
	MaxDistance float64
	Logger      *zap.Logger
}

// Option configures Options.
type Option func(*Options)

// WithStrategy selects the merge implementation.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithMaxDistance drops edges longer than d. A value ≤ 0 disables pruning.
func WithMaxDistance(d float64) Option {
	return func(o *Options) { o.MaxDistance = d }
}

// WithLogger routes engine debug output to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns relabel merging, no pruning and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Strategy: StrategyRelabel,
		Logger:   zap.NewNop(),
	}
}
