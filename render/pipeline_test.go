package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deadsy/meshx/geom"
)

func TestSurfaceToVolumeSphere(t *testing.T) {
	box := geom.Box3{
		Min: geom.Point3D{X: -2, Y: -2, Z: -2},
		Max: geom.Point3D{X: 2, Y: 2, Z: 2},
	}
	tets := SurfaceToVolume(8, 8, 8, box, sphereField(), 0)
	assert.NotEmpty(t, tets)
}

func TestSurfaceToVolumeEmptyField(t *testing.T) {
	box := geom.Box3{
		Min: geom.Point3D{X: -1, Y: -1, Z: -1},
		Max: geom.Point3D{X: 1, Y: 1, Z: 1},
	}
	always10 := geom.ScalarFieldFunc(func(x, y, z float64) float64 { return 10 })
	tets := SurfaceToVolume(4, 4, 4, box, always10, 0)
	assert.Empty(t, tets)
}

func TestOctreeRefined(t *testing.T) {
	tets := OctreeRefined(unitBox(), 1, alwaysInside(), 2.0)
	assert.NotEmpty(t, tets)
}

func TestOctreeRefinedEmptyDomain(t *testing.T) {
	tets := OctreeRefined(unitBox(), 2, neverInside(), 2.0)
	assert.Empty(t, tets)
}

func TestVoxelRefined(t *testing.T) {
	tets := VoxelRefined(unitBox(), 2, 2, 2, alwaysInside(), 2.0)
	assert.NotEmpty(t, tets)
}

func TestRefineTetrahedraEmpty(t *testing.T) {
	assert.Empty(t, RefineTetrahedra(nil, 2.0))
}

func TestRefineTetrahedraSingle(t *testing.T) {
	tet := geom.Tetrahedron{
		A: geom.Point3D{Index: 0, X: 0, Y: 0, Z: 0},
		B: geom.Point3D{Index: 1, X: 1, Y: 0, Z: 0},
		C: geom.Point3D{Index: 2, X: 0.5, Y: 1, Z: 0},
		D: geom.Point3D{Index: 3, X: 0.5, Y: 0.5, Z: 1},
	}
	tets := RefineTetrahedra([]geom.Tetrahedron{tet}, 2.0)
	assert.NotEmpty(t, tets)
}
