package render

import "github.com/deadsy/meshx/geom"

// hexCorners holds the eight corners of a hexahedral cell in the fixed
// ordering the 5-tetrahedra decomposition expects: bottom face CCW
// p0-p1-p2-p3, top face CCW p4-p5-p6-p7, with p_i+4 directly above p_i.
type hexCorners [8]geom.Point3D

// fiveTetrahedra decomposes one hexahedral cell into five tetrahedra. The
// vertex ordering and decomposition pattern are fixed so neighbouring cells
// sharing corner indices tile space consistently.
func fiveTetrahedra(c hexCorners) [5]geom.Tetrahedron {
	return [5]geom.Tetrahedron{
		{A: c[0], B: c[1], C: c[3], D: c[4]},
		{A: c[1], B: c[2], C: c[3], D: c[6]},
		{A: c[1], B: c[4], C: c[5], D: c[6]},
		{A: c[3], B: c[4], C: c[6], D: c[7]},
		{A: c[1], B: c[3], C: c[4], D: c[6]},
	}
}

// cellCenter returns the centroid of a hexahedral cell's eight corners.
func cellCenter(c hexCorners) (x, y, z float64) {
	for _, p := range c {
		x += p.X
		y += p.Y
		z += p.Z
	}
	return x / 8, y / 8, z / 8
}
