// Package cluster groups a set of 3-D points into connected components by
// repeatedly fusing the closest pairs of a complete, distance-weighted graph.
//
// Pipeline
//
//  1. GenerateEdges emits one Edge per unordered pair (a<b), in (a asc, b asc) order,
//     weighted by the exact Euclidean distance between the two points.
//  2. SortEdges orders them ascending by distance with a stable, NaN-safe total
//     order, so equal distances keep their construction order.
//  3. A Merger holds one component label per node and fuses components as
//     edges are consumed.
//  4. A Policy decides when to stop:
//
//   - BoundedCount(k)       - consume exactly the first k edges, redundant or not.
//   - UntilFullyConnected() - consume until every node shares one label; the
//     edge that achieves it is the closing edge.
//
// Both policies run through the same Engine. NewEngine builds and orders the
// edge list once; every Run replays it from the start with fresh labels, so
// an Engine may serve concurrent runs.
//
// Results
//
//   - (*Engine).Bounded(k)       → product of the three largest component sizes (uint64).
//   - (*Engine).FullyConnected() → product of the closing edge's endpoint X coordinates.
//
// Merge strategies
//
//   - StrategyRelabel (default): every member of component A is relabelled to B
//     with a full scan. O(n) per real merge.
//   - StrategyUnionFind: disjoint-set forest with path compression and union by
//     rank. Observably identical partitions and closing edges.
//
// Errors
//
//	ErrNoNodes              - zero nodes were supplied.
//	ErrIterationsOutOfRange - k < 0 or k exceeds the number of edges.
//	ErrDisconnected         - the edge list ran out before all nodes merged.
//	ErrUnknownPolicy        - a Policy value outside the two variants.
//	ErrUnknownStrategy      - a Strategy value outside the two variants.
//
// A single node is already fully connected: FullyConnected returns 0 with no
// error and Run reports Connected with a nil Closing edge.
//
// Complexity: O(n² log n) to build the engine; O(k·n) (relabel) or
// O(k·α(n)) (union-find) per run over k consumed edges.
package cluster
