package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deadsy/meshx/geom"
)

func TestDelaunay2DUnitSquare(t *testing.T) {
	points := []geom.Point2D{
		{Index: 0, X: 0, Y: 0},
		{Index: 1, X: 1, Y: 0},
		{Index: 2, X: 0, Y: 1},
		{Index: 3, X: 1, Y: 1},
	}
	triangles, err := Delaunay2D(points)
	require.NoError(t, err)
	assert.Len(t, triangles, 2)

	for _, tri := range triangles {
		assert.False(t, isSuperVertex2D(tri.A))
		assert.False(t, isSuperVertex2D(tri.B))
		assert.False(t, isSuperVertex2D(tri.C))
	}
}

func TestDelaunay2DEmptyInput(t *testing.T) {
	_, err := Delaunay2D(nil)
	assert.ErrorIs(t, err, geom.ErrEmptyInput)
}

func TestDelaunay2DInsufficientPoints(t *testing.T) {
	_, err := Delaunay2D([]geom.Point2D{{Index: 0}, {Index: 1, X: 1}})
	require.Error(t, err)
	var insufficient *geom.InsufficientPointsError
	assert.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 2, insufficient.Got)
	assert.Equal(t, 3, insufficient.Need)
}

func TestDelaunay2DDelaunayProperty(t *testing.T) {
	points := []geom.Point2D{
		{Index: 0, X: 0, Y: 0},
		{Index: 1, X: 2, Y: 0},
		{Index: 2, X: 1, Y: 2},
		{Index: 3, X: 1, Y: 0.5},
		{Index: 4, X: 0.5, Y: 1},
	}
	triangles, err := Delaunay2D(points)
	require.NoError(t, err)
	require.NotEmpty(t, triangles)

	for _, tri := range triangles {
		circ, err := tri.Circumcircle()
		require.NoError(t, err)
		for _, p := range points {
			if tri.HasVertex(p) {
				continue
			}
			assert.False(t, circ.Center.DistanceSquared(p) < circ.Radius*circ.Radius-1e-9,
				"point %v strictly inside circumcircle of %v", p, tri)
		}
	}
}
