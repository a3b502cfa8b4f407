package render

import "github.com/deadsy/meshx/geom"

// superTriangleIndexBase is the first of three consecutive sentinel indices
// assigned to a 2D super-triangle's corners. It sits far below any index a
// caller would plausibly assign; finalization treats every index at or
// below this value as a super-triangle vertex, so caller indices must stay
// above it.
const superTriangleIndexBase = int64(-1000000)

// superTetrahedronIndexBase is the analogous sentinel base for 3D.
const superTetrahedronIndexBase = int64(-2000000)

// superTriangle builds the initial 2D super-triangle per spec: bounding box
// of points, margin = (spread+1)*10, a triangle wide enough at the bottom
// and tall enough on top to contain every circumcircle the Bowyer-Watson
// sweep will ever compute.
func superTriangle(points []geom.Point2D) geom.Triangle {
	box := geom.BoundingBox2(points)
	margin := (box.Spread() + 1) * 10

	minX := box.Min.X - margin
	minY := box.Min.Y - margin
	maxX := box.Max.X + margin
	maxY := box.Max.Y + margin
	midX := (box.Min.X + box.Max.X) / 2

	return geom.Triangle{
		A: geom.Point2D{Index: superTriangleIndexBase, X: minX, Y: minY},
		B: geom.Point2D{Index: superTriangleIndexBase - 1, X: maxX, Y: minY},
		C: geom.Point2D{Index: superTriangleIndexBase - 2, X: midX, Y: maxY + margin},
	}
}

// superTetrahedron builds the initial 3D super-tetrahedron per spec:
// bounding box of points, margin = 100*d + 100, four vertices placed
// symmetrically around the centroid at radius margin, following the regular
// tetrahedron's alternating-sign unit vertex pattern scaled to that radius.
func superTetrahedron(points []geom.Point3D) geom.Tetrahedron {
	box := geom.BoundingBox3(points)
	d := box.Spread()
	margin := 100*d + 100
	center := box.Center()

	// Unit vertices of a regular tetrahedron centered at the origin,
	// scaled so each sits at distance margin from center.
	scale := margin / sqrt3

	offset := func(sx, sy, sz float64) geom.Point3D {
		return geom.Point3D{X: center.X + sx*scale, Y: center.Y + sy*scale, Z: center.Z + sz*scale}
	}

	return geom.Tetrahedron{
		A: withIndex(offset(1, 1, 1), superTetrahedronIndexBase),
		B: withIndex(offset(1, -1, -1), superTetrahedronIndexBase-1),
		C: withIndex(offset(-1, 1, -1), superTetrahedronIndexBase-2),
		D: withIndex(offset(-1, -1, 1), superTetrahedronIndexBase-3),
	}
}

func withIndex(p geom.Point3D, index int64) geom.Point3D {
	p.Index = index
	return p
}

// sqrt3 is math.Sqrt(3), the magnitude of (1,1,1): precomputing it keeps
// superTetrahedron free of a math import for a single constant.
const sqrt3 = 1.7320508075688772

// isSuperVertex2D reports whether p belongs to a super-triangle rather than
// to caller-supplied input.
func isSuperVertex2D(p geom.Point2D) bool {
	return p.Index <= superTriangleIndexBase
}

// isSuperVertex3D reports whether p belongs to a super-tetrahedron rather
// than to caller-supplied input.
func isSuperVertex3D(p geom.Point3D) bool {
	return p.Index <= superTetrahedronIndexBase
}
