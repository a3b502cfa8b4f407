package render

import "github.com/deadsy/meshx/geom"

// Delaunay3D triangulates points with the incremental Bowyer-Watson
// algorithm in 3D. Unlike Delaunay2D, it has no explicit minimum-point
// guard: a caller supplying fewer than four points gets back every
// tetrahedron filtered out in finalization because each one still touches a
// super-tetrahedron vertex, so the result is simply empty.
func Delaunay3D(points []geom.Point3D) []geom.Tetrahedron {
	if len(points) == 0 {
		return nil
	}

	super := superTetrahedron(points)
	tets := []geom.Tetrahedron{super}

	for _, p := range points {
		tets = bowyerWatsonInsert3D(tets, p)
	}

	result := make([]geom.Tetrahedron, 0, len(tets))
	for _, t := range tets {
		v := t.Vertices()
		if isSuperVertex3D(v[0]) || isSuperVertex3D(v[1]) || isSuperVertex3D(v[2]) || isSuperVertex3D(v[3]) {
			continue
		}
		result = append(result, t)
	}
	return result
}

// bowyerWatsonInsert3D performs one point insertion in 3D: locate bad
// tetrahedra whose circumsphere contains p, extract the cavity's boundary
// faces, excise, and refill with tetrahedra fanned from p.
func bowyerWatsonInsert3D(tets []geom.Tetrahedron, p geom.Point3D) []geom.Tetrahedron {
	bad := make([]geom.Tetrahedron, 0)
	good := make([]geom.Tetrahedron, 0, len(tets))

	for _, t := range tets {
		if !t.NonDegenerate() {
			good = append(good, t)
			continue
		}
		sphere := t.Circumsphere()
		if sphere.Contains(p) {
			bad = append(bad, t)
		} else {
			good = append(good, t)
		}
	}

	boundary := make([]geom.Face, 0)
	for i, t := range bad {
		for _, f := range t.Faces() {
			shared := false
			for j, other := range bad {
				if i == j {
					continue
				}
				if other.ContainsFace(f) {
					shared = true
					break
				}
			}
			if !shared {
				boundary = append(boundary, f)
			}
		}
	}

	for _, f := range boundary {
		fv := f.Vertices()
		good = append(good, geom.Tetrahedron{A: fv[0], B: fv[1], C: fv[2], D: p})
	}
	return good
}
