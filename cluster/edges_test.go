package cluster_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/circuits/cluster"
	"github.com/katalvlaran/circuits/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateEdges_CountOrderAndSymmetry checks n(n-1)/2 edges, (a,b) order,
// non-negative distances and symmetry under endpoint swap.
func TestGenerateEdges_CountOrderAndSymmetry(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 7, 25} {
		nodes := randomCloud(n, int64(n))
		edges := cluster.GenerateEdges(nodes)
		require.Len(t, edges, n*(n-1)/2, "n=%d", n)
		assert.Equal(t, cluster.EdgeCount(n), len(edges))

		for i, e := range edges {
			assert.Less(t, e.A, e.B)
			assert.GreaterOrEqual(t, e.Distance, 0.0)
			assert.Equal(t, e.Distance, cluster.Distance(nodes[e.B], nodes[e.A]))
			if i > 0 {
				prev := edges[i-1]
				assert.True(t, prev.A < e.A || (prev.A == e.A && prev.B < e.B), "construction order at %d", i)
			}
		}
	}
}

// TestDistance_Exact verifies the 3-D Euclidean norm.
func TestDistance_Exact(t *testing.T) {
	a := point.New("a", 1, 2, 3)
	b := point.New("b", 4, 6, 15)
	assert.Equal(t, 13.0, cluster.Distance(a, b))
	assert.Equal(t, 0.0, cluster.Distance(a, a))
}

// TestSortEdges_ThreeNodeExample follows the worked example (0,1)=1, (1,2)=2, (0,2)=3.
func TestSortEdges_ThreeNodeExample(t *testing.T) {
	edges := cluster.GenerateEdges(onX(0, 1, 3))
	cluster.SortEdges(edges)
	assert.Equal(t, []cluster.Edge{
		{A: 0, B: 1, Distance: 1},
		{A: 1, B: 2, Distance: 2},
		{A: 0, B: 2, Distance: 3},
	}, edges)
}

// TestSortEdges_NonDecreasingStableIdempotent checks order, tie-break stability and idempotence.
func TestSortEdges_NonDecreasingStableIdempotent(t *testing.T) {
	// Small coordinate range forces many equal distances.
	nodes := make([]point.Node, 0, 27)
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 3; z++ {
				nodes = append(nodes, point.New("", float64(x), float64(y), float64(z)))
			}
		}
	}
	edges := cluster.GenerateEdges(nodes)
	cluster.SortEdges(edges)

	for i := 1; i < len(edges); i++ {
		prev, cur := edges[i-1], edges[i]
		require.LessOrEqual(t, prev.Distance, cur.Distance)
		if prev.Distance == cur.Distance {
			assert.True(t, prev.A < cur.A || (prev.A == cur.A && prev.B < cur.B), "tie-break at %d", i)
		}
	}

	again := append([]cluster.Edge(nil), edges...)
	cluster.SortEdges(again)
	assert.Equal(t, edges, again)
}

// TestSortEdges_NaNIsDeterministic places NaN after +Inf instead of failing.
func TestSortEdges_NaNIsDeterministic(t *testing.T) {
	edges := []cluster.Edge{
		{A: 0, B: 1, Distance: math.NaN()},
		{A: 0, B: 2, Distance: math.Inf(1)},
		{A: 1, B: 2, Distance: 1},
		{A: 1, B: 3, Distance: math.NaN()},
		{A: 2, B: 3, Distance: 0},
	}
	cluster.SortEdges(edges)

	got := make([][2]int, len(edges))
	for i, e := range edges {
		got[i] = [2]int{e.A, e.B}
	}
	assert.Equal(t, [][2]int{{2, 3}, {1, 2}, {0, 2}, {0, 1}, {1, 3}}, got)
}

// TestCompareDistance_TotalOrder checks signed zeros, infinities and NaN.
func TestCompareDistance_TotalOrder(t *testing.T) {
	ordered := []float64{math.Inf(-1), -1, math.Copysign(0, -1), 0, 1, math.Inf(1), math.NaN()}
	for i := range ordered {
		assert.Equal(t, 0, cluster.CompareDistance(ordered[i], ordered[i]), "reflexive at %d", i)
		for j := i + 1; j < len(ordered); j++ {
			assert.Equal(t, -1, cluster.CompareDistance(ordered[i], ordered[j]), "%v < %v", ordered[i], ordered[j])
			assert.Equal(t, 1, cluster.CompareDistance(ordered[j], ordered[i]), "%v > %v", ordered[j], ordered[i])
		}
	}
}

// TestSortEdges_NegativeNaNSortsFirst places a sign-bit NaN before -Inf and every distance.
func TestSortEdges_NegativeNaNSortsFirst(t *testing.T) {
	negNaN := math.Copysign(math.NaN(), -1)
	require.True(t, math.Signbit(negNaN))

	edges := []cluster.Edge{
		{A: 0, B: 1, Distance: 1},
		{A: 0, B: 2, Distance: negNaN},
		{A: 1, B: 2, Distance: math.NaN()},
		{A: 1, B: 3, Distance: math.Inf(1)},
	}
	cluster.SortEdges(edges)

	got := make([][2]int, len(edges))
	for i, e := range edges {
		got[i] = [2]int{e.A, e.B}
	}
	assert.Equal(t, [][2]int{{0, 2}, {0, 1}, {1, 3}, {1, 2}}, got)
	assert.Equal(t, -1, cluster.CompareDistance(negNaN, math.Inf(-1)))
}
