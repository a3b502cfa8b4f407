package render

import (
	"math"

	"github.com/deadsy/meshx/geom"
)

// DefaultQualityThreshold is the typical radius-edge ratio ceiling quoted
// for Ruppert-style refinement.
const DefaultQualityThreshold = 2.0

// DelaunayRefine builds a 3D Bowyer-Watson mesh from points and repeatedly
// locates the tetrahedron with the worst radius-edge ratio, inserting its
// circumcenter and fully re-triangulating, until every tetrahedron meets
// qualityMax or the loop has run 100 times the input point count. The
// recompute-from-scratch strategy trades performance for the simplicity of
// always having a valid Delaunay mesh after each insertion.
func DelaunayRefine(points []geom.Point3D, qualityMax float64) []geom.Tetrahedron {
	working := make([]geom.Point3D, len(points))
	copy(working, points)

	idx := geom.NewIndexSource(geom.MaxIndex3D(working) + 1)
	tets := Delaunay3D(working)

	maxIterations := 100 * len(points)
	for iter := 0; iter < maxIterations; iter++ {
		worst, ratio, ok := worstTetrahedron(tets)
		if !ok || ratio <= qualityMax {
			break
		}

		sphere := worst.Circumsphere()
		steiner := geom.Point3D{Index: idx.Next(), X: sphere.Center.X, Y: sphere.Center.Y, Z: sphere.Center.Z}
		working = append(working, steiner)
		tets = Delaunay3D(working)
	}

	return tets
}

// worstTetrahedron returns the tetrahedron with the greatest radius-edge
// ratio R/l_min, and whether any candidate was found.
func worstTetrahedron(tets []geom.Tetrahedron) (geom.Tetrahedron, float64, bool) {
	var worst geom.Tetrahedron
	worstRatio := math.Inf(-1)
	found := false

	for _, t := range tets {
		if !t.NonDegenerate() {
			continue
		}
		ratio := radiusEdgeRatio(t)
		if ratio > worstRatio {
			worstRatio = ratio
			worst = t
			found = true
		}
	}
	return worst, worstRatio, found
}

// radiusEdgeRatio returns a tetrahedron's circumradius divided by its
// shortest edge length.
func radiusEdgeRatio(t geom.Tetrahedron) float64 {
	sphere := t.Circumsphere()
	v := t.Vertices()
	edges := [6][2]geom.Point3D{
		{v[0], v[1]}, {v[0], v[2]}, {v[0], v[3]},
		{v[1], v[2]}, {v[1], v[3]}, {v[2], v[3]},
	}
	minEdge := math.Inf(1)
	for _, e := range edges {
		d := e[0].Distance(e[1])
		if d < minEdge {
			minEdge = d
		}
	}
	if minEdge < geom.Epsilon {
		return math.Inf(1)
	}
	return sphere.Radius / minEdge
}
