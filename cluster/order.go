// Package cluster orders edges by distance under a NaN-safe total order.
package cluster

import (
	"cmp"
	"math"
	"slices"
)

// totalKey maps f onto an int64 whose natural order is the IEEE 754 totalOrder:
// -NaN < -Inf < … < -0 < +0 < … < +Inf < +NaN.
//
// A NaN keeps its sign: Inf-Inf yields a negative NaN on common hardware,
// which sorts before every number.
//
// Negative values have every bit except the sign flipped, which reverses
// their magnitude order while keeping them below all positive values.
func totalKey(f float64) int64 {
	bits := int64(math.Float64bits(f))
	bits ^= int64(uint64(bits>>63) >> 1)

	return bits
}

// CompareDistance is a total order on float64 suitable for sorting edges.
// It returns -1, 0 or +1 and never treats NaN as incomparable.
func CompareDistance(x, y float64) int {
	return cmp.Compare(totalKey(x), totalKey(y))
}

// SortEdges orders edges ascending by Distance in place.
//
// The sort is stable, so edges with equal distance keep their construction
// order; sorting an already sorted slice leaves it unchanged.
//
// Complexity: O(E log E).
func SortEdges(edges []Edge) {
	slices.SortStableFunc(edges, func(x, y Edge) int {
		return CompareDistance(x.Distance, y.Distance)
	})
}
