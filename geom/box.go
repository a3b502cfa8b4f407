package geom

import "gonum.org/v1/gonum/floats"

// Box2 is an axis-aligned bounding box in 2D.
type Box2 struct {
	Min, Max Point2D
}

// BoundingBox2 returns the axis-aligned bounding box of points. Panics on an
// empty slice; callers are expected to have validated non-empty input first
// (mirrors the super-triangle builder's own precondition).
func BoundingBox2(points []Point2D) Box2 {
	if len(points) == 0 {
		panic("geom: BoundingBox2 of empty point set")
	}
	b := Box2{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		if p.X < b.Min.X {
			b.Min.X = p.X
		}
		if p.Y < b.Min.Y {
			b.Min.Y = p.Y
		}
		if p.X > b.Max.X {
			b.Max.X = p.X
		}
		if p.Y > b.Max.Y {
			b.Max.Y = p.Y
		}
	}
	return b
}

// Spread returns the larger of the box's two axis extents.
func (b Box2) Spread() float64 {
	return floats.Max([]float64{b.Max.X - b.Min.X, b.Max.Y - b.Min.Y})
}

//-----------------------------------------------------------------------------

// Box3 is an axis-aligned bounding box in 3D.
type Box3 struct {
	Min, Max Point3D
}

// BoundingBox3 returns the axis-aligned bounding box of points.
func BoundingBox3(points []Point3D) Box3 {
	if len(points) == 0 {
		panic("geom: BoundingBox3 of empty point set")
	}
	b := Box3{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		if p.X < b.Min.X {
			b.Min.X = p.X
		}
		if p.Y < b.Min.Y {
			b.Min.Y = p.Y
		}
		if p.Z < b.Min.Z {
			b.Min.Z = p.Z
		}
		if p.X > b.Max.X {
			b.Max.X = p.X
		}
		if p.Y > b.Max.Y {
			b.Max.Y = p.Y
		}
		if p.Z > b.Max.Z {
			b.Max.Z = p.Z
		}
	}
	return b
}

// Spread returns the largest of the box's three axis extents.
func (b Box3) Spread() float64 {
	return floats.Max([]float64{b.Max.X - b.Min.X, b.Max.Y - b.Min.Y, b.Max.Z - b.Min.Z})
}

// Center returns the box's midpoint.
func (b Box3) Center() Point3D {
	return Point3D{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}
