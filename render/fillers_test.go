package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deadsy/meshx/geom"
)

func unitBox() geom.Box3 {
	return geom.Box3{
		Min: geom.Point3D{X: 0, Y: 0, Z: 0},
		Max: geom.Point3D{X: 1, Y: 1, Z: 1},
	}
}

func alwaysInside() geom.Predicate {
	return geom.PredicateFunc(func(p geom.Point3D) bool { return true })
}

func neverInside() geom.Predicate {
	return geom.PredicateFunc(func(p geom.Point3D) bool { return false })
}

func TestVoxelFillSingleCell(t *testing.T) {
	tets := VoxelFill(unitBox(), 1, 1, 1, alwaysInside())
	assert.Len(t, tets, 5)
	for _, tet := range tets {
		assert.True(t, tet.NonDegenerate())
	}
}

func TestVoxelFillEmptyDomain(t *testing.T) {
	tets := VoxelFill(unitBox(), 2, 2, 2, neverInside())
	assert.Empty(t, tets)
}

func TestVoxelFillSharesVerticesAcrossCells(t *testing.T) {
	tets := VoxelFill(unitBox(), 2, 1, 1, alwaysInside())
	assert.Len(t, tets, 10)

	seen := make(map[int64]geom.Point3D)
	for _, tet := range tets {
		for _, v := range tet.Vertices() {
			if prev, ok := seen[v.Index]; ok {
				assert.Equal(t, prev.X, v.X)
				assert.Equal(t, prev.Y, v.Y)
				assert.Equal(t, prev.Z, v.Z)
			}
			seen[v.Index] = v
		}
	}
	// Two cells of 8 corners each share the 4 corners of their common face.
	assert.Len(t, seen, 12)
}

func TestOctreeFillDepthOne(t *testing.T) {
	tets := OctreeFill(unitBox(), 1, alwaysInside())
	assert.Len(t, tets, 40)
}

func TestOctreeFillEmptyDomain(t *testing.T) {
	tets := OctreeFill(unitBox(), 2, neverInside())
	assert.Empty(t, tets)
}
