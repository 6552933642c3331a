// Package cluster provides a disjoint-set Merger with path compression and union by rank.
package cluster

// UnionFind is a disjoint-set forest over node indices with path compression
// and union by rank. The label of a node is the index of its root.
type UnionFind struct {
	parent []int
	rank   []int
	count  int
}

// NewUnionFind returns a forest of n singleton trees.
func NewUnionFind(n int) *UnionFind {
	uf := &UnionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf
}

// find walks to the root, halving the path as it goes.
func (uf *UnionFind) find(u int) int {
	for uf.parent[u] != u {
		uf.parent[u] = uf.parent[uf.parent[u]]
		u = uf.parent[u]
	}

	return u
}

// Merge joins the trees of a and b; the lower-rank root goes under the higher one.
func (uf *UnionFind) Merge(a, b int) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	switch {
	case uf.rank[ra] < uf.rank[rb]:
		uf.parent[ra] = rb
	case uf.rank[ra] > uf.rank[rb]:
		uf.parent[rb] = ra
	default:
		uf.parent[ra] = rb
		uf.rank[rb]++
	}
	uf.count--

	return true
}

// Label returns the root index of node i.
func (uf *UnionFind) Label(i int) int { return uf.find(i) }

// Count returns the number of trees.
func (uf *UnionFind) Count() int { return uf.count }

// Len returns the number of nodes.
func (uf *UnionFind) Len() int { return len(uf.parent) }
