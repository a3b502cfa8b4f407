package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deadsy/meshx/geom"
)

func unitCubePoints() []geom.Point3D {
	return []geom.Point3D{
		{Index: 0, X: 0, Y: 0, Z: 0},
		{Index: 1, X: 1, Y: 0, Z: 0},
		{Index: 2, X: 1, Y: 1, Z: 0},
		{Index: 3, X: 0, Y: 1, Z: 0},
		{Index: 4, X: 0, Y: 0, Z: 1},
		{Index: 5, X: 1, Y: 0, Z: 1},
		{Index: 6, X: 1, Y: 1, Z: 1},
		{Index: 7, X: 0, Y: 1, Z: 1},
	}
}

func TestDelaunay3DUnitCube(t *testing.T) {
	tets := Delaunay3D(unitCubePoints())
	require.GreaterOrEqual(t, len(tets), 5)

	for _, tet := range tets {
		for _, v := range tet.Vertices() {
			assert.False(t, isSuperVertex3D(v))
			assert.GreaterOrEqual(t, v.Index, int64(0))
			assert.LessOrEqual(t, v.Index, int64(7))
		}
		assert.True(t, tet.NonDegenerate())
	}
}

func TestDelaunay3DEmptyInput(t *testing.T) {
	assert.Nil(t, Delaunay3D(nil))
}

func TestDelaunay3DTooFewPointsIsEmpty(t *testing.T) {
	points := []geom.Point3D{
		{Index: 0, X: 0, Y: 0, Z: 0},
		{Index: 1, X: 1, Y: 0, Z: 0},
		{Index: 2, X: 0, Y: 1, Z: 0},
	}
	assert.Empty(t, Delaunay3D(points))
}
