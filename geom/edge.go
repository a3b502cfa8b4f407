package geom

// Edge is an unordered pair of Point2D. Two edges are equal if they carry
// the same two endpoints in either direction.
type Edge struct {
	Start, End Point2D
}

// Reverse returns a new edge with its endpoints swapped.
func (e Edge) Reverse() Edge {
	return Edge{Start: e.End, End: e.Start}
}

// Equal reports whether e and o share the same two endpoints, in either order.
func (e Edge) Equal(o Edge) bool {
	return (e.Start == o.Start && e.End == o.End) ||
		(e.Start == o.End && e.End == o.Start)
}
