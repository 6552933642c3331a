// Package cluster builds the complete distance-weighted graph over a node set.
package cluster

import (
	"math"

	"github.com/katalvlaran/circuits/point"
)

// Distance returns the exact Euclidean distance between a and b.
// No epsilon is applied; the result is symmetric in its arguments.
func Distance(a, b point.Node) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dz := b.Z - a.Z

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// EdgeCount returns n·(n-1)/2, the size of the complete graph over n nodes.
func EdgeCount(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// GenerateEdges builds the complete graph over nodes.
//
// Each unordered pair {a,b} with a<b is emitted exactly once, in lexicographic
// (a, b) order. That order is the tie-break SortEdges preserves for equal distances.
//
// Complexity: O(n²) time and memory.
func GenerateEdges(nodes []point.Node) []Edge {
	n := len(nodes)
	edges := make([]Edge, 0, EdgeCount(n))
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			edges = append(edges, Edge{A: a, B: b, Distance: Distance(nodes[a], nodes[b])})
		}
	}

	return edges
}
