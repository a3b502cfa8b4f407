package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Triangle is an ordered triple of Point2D.
type Triangle struct {
	A, B, C Point2D
}

// Vertices returns the triangle's three corners in declaration order.
func (t Triangle) Vertices() [3]Point2D {
	return [3]Point2D{t.A, t.B, t.C}
}

// Edges returns the triangle's three edges.
func (t Triangle) Edges() [3]Edge {
	return [3]Edge{
		{Start: t.A, End: t.B},
		{Start: t.B, End: t.C},
		{Start: t.C, End: t.A},
	}
}

// HasVertex reports whether p is one of the triangle's three corners.
func (t Triangle) HasVertex(p Point2D) bool {
	return t.A == p || t.B == p || t.C == p
}

// Circumcircle solves the 2x2 linear system for the circle through all three
// vertices. Returns a DegenerateInputError for colinear input.
func (t Triangle) Circumcircle() (Circle, error) {
	b := r2.Sub(t.B.Vec(), t.A.Vec())
	c := r2.Sub(t.C.Vec(), t.A.Vec())

	det := b.X*c.Y - b.Y*c.X
	if math.Abs(det) < Epsilon {
		return Circle{}, &DegenerateInputError{Kind: "triangle"}
	}

	bLen2 := r2.Dot(b, b)
	cLen2 := r2.Dot(c, c)

	ux := (bLen2*c.Y - cLen2*b.Y) / (2 * det)
	uy := (cLen2*b.X - bLen2*c.X) / (2 * det)

	center := Point2D{Index: SuperVertexIndex, X: t.A.X + ux, Y: t.A.Y + uy}
	radius := center.Distance(t.A)

	return Circle{Center: center, Radius: radius}, nil
}
