package point

import "errors"

// ErrMalformedRecord indicates that a record cannot be read as three real numbers.
var ErrMalformedRecord = errors.New("point: malformed record")

// Separator splits the coordinates of one record.
const Separator = ","

// Node is a single point with a stable identity.
//
// Nodes are immutable once built; callers must not change coordinates
// while a cluster.Engine holds them.
type Node struct {
	// ID is the opaque identity of the Node, usually its source line.
	ID string

	// X, Y and Z are the coordinates.
	X, Y, Z float64
}

// New returns a Node with the given identity and coordinates.
func New(id string, x, y, z float64) Node {
	return Node{ID: id, X: x, Y: y, Z: z}
}
