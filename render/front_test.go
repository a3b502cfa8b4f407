package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deadsy/meshx/geom"
)

func tetrahedronBoundary() ([]geom.Face, []geom.Point3D) {
	a := geom.Point3D{Index: 0, X: 0, Y: 0, Z: 0}
	b := geom.Point3D{Index: 1, X: 1, Y: 0, Z: 0}
	c := geom.Point3D{Index: 2, X: 0.5, Y: 1, Z: 0}
	d := geom.Point3D{Index: 3, X: 0.5, Y: 0.5, Z: 1}

	tet := geom.Tetrahedron{A: a, B: b, C: c, D: d}
	faces := SurfaceFaces([]geom.Tetrahedron{tet})
	points := []geom.Point3D{a, b, c, d}
	return faces, points
}

func TestAdvancingFrontClosesOnExistingPoint(t *testing.T) {
	faces, points := tetrahedronBoundary()
	tets := AdvancingFront(faces, points)
	require.NotEmpty(t, tets)
	for _, tet := range tets {
		assert.True(t, tet.NonDegenerate())
	}
}

func TestAdvancingFrontEmptyBoundary(t *testing.T) {
	assert.Nil(t, AdvancingFront(nil, nil))
}

// TestAdvancingFrontSynthesizesWhenNoCandidateExists isolates a single face
// with no other point on either side of its plane, forcing the synthesis
// branch, and checks the synthesized vertex's offset against that face's own
// edge lengths rather than any other face's. Only the first tetrahedron
// uses the synthesis branch; after it the front keeps alternating between
// the original face and the synthesized tetrahedron's three side faces, so
// the loop stops at its cap of 100 iterations for a one-face front.
func TestAdvancingFrontSynthesizesWhenNoCandidateExists(t *testing.T) {
	a := geom.Point3D{Index: 0, X: 0, Y: 0, Z: 0}
	b := geom.Point3D{Index: 1, X: 6, Y: 0, Z: 0}
	c := geom.Point3D{Index: 2, X: 0, Y: 1, Z: 0}

	face := geom.Face{A: a, B: b, C: c}
	points := []geom.Point3D{a, b, c}

	tets := AdvancingFront([]geom.Face{face}, points)
	require.Len(t, tets, 100)

	synth := tets[0].D
	assert.NotEqual(t, a, synth)
	assert.NotEqual(t, b, synth)
	assert.NotEqual(t, c, synth)

	wantEdge := faceMinEdgeLength(face)
	centroid := faceCentroid(face)
	normal := faceNormal(face)

	gotOffset := centroid.Distance(synth)
	assert.InDelta(t, synthesisFraction*wantEdge, gotOffset, 1e-9)

	dir := geom.Point3D{
		X: (synth.X - centroid.X) / gotOffset,
		Y: (synth.Y - centroid.Y) / gotOffset,
		Z: (synth.Z - centroid.Z) / gotOffset,
	}
	assert.InDelta(t, normal.X, dir.X, 1e-9)
	assert.InDelta(t, normal.Y, dir.Y, 1e-9)
	assert.InDelta(t, normal.Z, dir.Z, 1e-9)
}
