//-----------------------------------------------------------------------------
/*

Point types

Point2D and Point3D are the atomic samples consumed by every generator in
this module. Each carries a stable integer index used as vertex identity
across a mesh; coordinates are Euclidean and immutable once created.

*/
//-----------------------------------------------------------------------------

package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

//-----------------------------------------------------------------------------

// Point2D is a 2D sample with an opaque identity label.
type Point2D struct {
	Index int64
	X, Y  float64
}

// Vec returns the point's coordinates as a gonum r2.Vec.
func (p Point2D) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// DistanceSquared returns the squared Euclidean distance to q.
func (p Point2D) DistanceSquared(q Point2D) float64 {
	d := r2.Sub(p.Vec(), q.Vec())
	return r2.Dot(d, d)
}

// Distance returns the Euclidean distance to q.
func (p Point2D) Distance(q Point2D) float64 {
	return math.Sqrt(p.DistanceSquared(q))
}

func (p Point2D) String() string {
	return fmt.Sprintf("Point2D(#%d, %g, %g)", p.Index, p.X, p.Y)
}

//-----------------------------------------------------------------------------

// Point3D is a 3D sample with an opaque identity label.
type Point3D struct {
	Index   int64
	X, Y, Z float64
}

// Vec returns the point's coordinates as a gonum r3.Vec.
func (p Point3D) Vec() r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// DistanceSquared returns the squared Euclidean distance to q.
func (p Point3D) DistanceSquared(q Point3D) float64 {
	d := r3.Sub(p.Vec(), q.Vec())
	return r3.Dot(d, d)
}

// Distance returns the Euclidean distance to q.
func (p Point3D) Distance(q Point3D) float64 {
	return math.Sqrt(p.DistanceSquared(q))
}

func (p Point3D) String() string {
	return fmt.Sprintf("Point3D(#%d, %g, %g, %g)", p.Index, p.X, p.Y, p.Z)
}

//-----------------------------------------------------------------------------
