// Package cluster summarizes a finished run: sizes, products and component listings.
package cluster

import (
	"slices"
)

// Result is the outcome of one Engine.Run.
type Result struct {
	// Policy is the rule the run stopped under.
	Policy Policy

	// Consumed is the number of edges read from the ordered list.
	Consumed int

	// Merges counts the consumed edges that joined two components.
	Merges int

	// Labels holds the final component label of each node index.
	Labels []int

	// Connected reports whether a single component remains.
	Connected bool

	// Closing is the edge that first left a single component.
	// Set only by UntilFullyConnected runs over two or more nodes.
	Closing *Edge
}

// Sizes returns the node count of every component, ascending.
func (r Result) Sizes() []int {
	counts := make(map[int]int)
	for _, l := range r.Labels {
		counts[l]++
	}
	sizes := make([]int, 0, len(counts))
	for _, c := range counts {
		sizes = append(sizes, c)
	}
	slices.Sort(sizes)

	return sizes
}

// LargestProduct multiplies the m largest component sizes, or all of them
// when fewer than m components exist.
func (r Result) LargestProduct(m int) uint64 {
	sizes := r.Sizes()
	product := uint64(1)
	for i := len(sizes) - 1; i >= 0 && i >= len(sizes)-m; i-- {
		product *= uint64(sizes[i])
	}

	return product
}

// Components groups node indices by label. Members are ascending and
// groups are ordered by their smallest member.
func (r Result) Components() [][]int {
	slot := make(map[int]int)
	var groups [][]int
	for i, l := range r.Labels {
		g, ok := slot[l]
		if !ok {
			g = len(groups)
			slot[l] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], i)
	}

	return groups
}
