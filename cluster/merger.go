// Package cluster defines the Merger contract and the reference relabel merger.
package cluster

import "fmt"

// Merger maintains one component label per node index.
//
// Initially every node is its own component. Merge fuses the components of
// its two arguments and reports whether anything changed; a redundant merge
// is a no-op that returns false. Count always equals Len() minus the number
// of merges that returned true.
type Merger interface {
	// Merge fuses the components holding a and b.
	Merge(a, b int) bool

	// Label returns the current component label of node i.
	// Equal labels mean "connected so far".
	Label(i int) int

	// Count returns the number of distinct components.
	Count() int

	// Len returns the number of nodes.
	Len() int
}

// newMerger builds the Merger for strategy s over n nodes.
func newMerger(s Strategy, n int) (Merger, error) {
	switch s {
	case StrategyRelabel:
		return NewRelabel(n), nil
	case StrategyUnionFind:
		return NewUnionFind(n), nil
	default:
		return nil, fmt.Errorf("%q: %w", s, ErrUnknownStrategy)
	}
}

// Relabel is the reference Merger: labels[i] is the component of node i.
// Merging A into B rewrites every label A to B with a linear scan.
type Relabel struct {
	labels []int
	count  int
}

// NewRelabel returns a Relabel with labels[i] = i.
func NewRelabel(n int) *Relabel {
	labels := make([]int, n)
	for i := range labels {
		labels[i] = i
	}

	return &Relabel{labels: labels, count: n}
}

// Merge relabels every node carrying a's label to b's label.
// Complexity: O(n) when the labels differ, O(1) otherwise.
func (r *Relabel) Merge(a, b int) bool {
	from, to := r.labels[a], r.labels[b]
	if from == to {
		return false
	}
	for i, l := range r.labels {
		if l == from {
			r.labels[i] = to
		}
	}
	r.count--

	return true
}

// Label returns the component label of node i.
func (r *Relabel) Label(i int) int { return r.labels[i] }

// Count returns the number of distinct labels.
func (r *Relabel) Count() int { return r.count }

// Len returns the number of nodes.
func (r *Relabel) Len() int { return len(r.labels) }
