package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/deadsy/meshx/geom"
)

// positiveSideEpsilon is the minimum signed distance from a face's plane
// for an existing point to count as a usable candidate on that side.
const positiveSideEpsilon = 1e-10

// synthesisFraction scales the front's minimum edge length to position a
// synthesized point when no existing point qualifies.
const synthesisFraction = 0.8

// AdvancingFront grows a tetrahedral volume mesh outward from a closed,
// outward-oriented triangular boundary by repeatedly gluing a tetrahedron
// onto the first face of the front and updating the front with its three
// new side faces. It runs at most 100 times the size of the initial front;
// nothing checks newly formed tetrahedra against existing ones, so the
// result is only sound for well-behaved, convex-ish inputs.
func AdvancingFront(faces []geom.Face, points []geom.Point3D) []geom.Tetrahedron {
	if len(faces) == 0 {
		return nil
	}

	front := make([]geom.Face, len(faces))
	copy(front, faces)

	workingPoints := make([]geom.Point3D, len(points))
	copy(workingPoints, points)

	idx := geom.NewIndexSource(geom.MaxIndex3D(workingPoints) + 1)

	tets := make([]geom.Tetrahedron, 0)
	maxIterations := 100 * len(front)

	for iter := 0; len(front) > 0 && iter < maxIterations; iter++ {
		face := front[0]
		front = front[1:]

		normal := faceNormal(face)
		centroid := faceCentroid(face)

		chosen, found := nearestOnSide(workingPoints, face, centroid, normal, 1)
		if !found {
			chosen, found = nearestOnSide(workingPoints, face, centroid, normal, -1)
		}
		if !found {
			edgeLen := faceMinEdgeLength(face)
			offset := r3.Scale(synthesisFraction*edgeLen, normal.Vec())
			synth := r3.Add(centroid.Vec(), offset)
			chosen = geom.Point3D{Index: idx.Next(), X: synth.X, Y: synth.Y, Z: synth.Z}
			workingPoints = append(workingPoints, chosen)
		}

		fv := face.Vertices()
		tet := geom.Tetrahedron{A: fv[0], B: fv[1], C: fv[2], D: chosen}
		tets = append(tets, tet)

		sides := [3]geom.Face{
			{A: fv[0], B: fv[1], C: chosen},
			{A: fv[1], B: fv[2], C: chosen},
			{A: fv[2], B: fv[0], C: chosen},
		}
		for _, side := range sides {
			pos := -1
			for i, f := range front {
				if f.Equal(side) {
					pos = i
					break
				}
			}
			if pos >= 0 {
				front = append(front[:pos], front[pos+1:]...)
			} else {
				front = append(front, side)
			}
		}
	}

	return tets
}

// faceNormal returns the outward unit normal of an oriented face.
func faceNormal(f geom.Face) geom.Point3D {
	u := r3.Sub(f.B.Vec(), f.A.Vec())
	v := r3.Sub(f.C.Vec(), f.A.Vec())
	n := r3.Cross(u, v)
	if r3.Norm(n) < geom.Epsilon {
		return geom.Point3D{}
	}
	unit := r3.Unit(n)
	return geom.Point3D{X: unit.X, Y: unit.Y, Z: unit.Z}
}

// faceCentroid returns the centroid of a face's three vertices.
func faceCentroid(f geom.Face) geom.Point3D {
	v := f.Vertices()
	return geom.Point3D{
		X: (v[0].X + v[1].X + v[2].X) / 3,
		Y: (v[0].Y + v[1].Y + v[2].Y) / 3,
		Z: (v[0].Z + v[1].Z + v[2].Z) / 3,
	}
}

// nearestOnSide searches points for the closest one to centroid that lies on
// the given side (+1 or -1) of the face's plane, i.e. whose signed distance
// along normal*side exceeds positiveSideEpsilon. It skips points already on
// the face to avoid forming a degenerate tetrahedron.
func nearestOnSide(points []geom.Point3D, face geom.Face, centroid, normal geom.Point3D, side float64) (geom.Point3D, bool) {
	best := geom.Point3D{}
	bestDist := math.Inf(1)
	found := false

	for _, p := range points {
		if face.HasVertex(p) {
			continue
		}
		signed := side * r3.Dot(r3.Sub(p.Vec(), centroid.Vec()), normal.Vec())
		if signed <= positiveSideEpsilon {
			continue
		}
		d := centroid.DistanceSquared(p)
		if d < bestDist {
			bestDist = d
			best = p
			found = true
		}
	}
	return best, found
}

// faceMinEdgeLength returns the shortest of a single face's three edges,
// recomputed at the moment synthesis is needed so a face created partway
// through the front's evolution is scaled by its own geometry rather than
// the initial front's.
func faceMinEdgeLength(f geom.Face) float64 {
	v := f.Vertices()
	ab := v[0].Distance(v[1])
	bc := v[1].Distance(v[2])
	ca := v[2].Distance(v[0])
	return math.Min(ab, math.Min(bc, ca))
}
