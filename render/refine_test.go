package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deadsy/meshx/geom"
)

func TestDelaunayRefineMeetsQuality(t *testing.T) {
	points := []geom.Point3D{
		{Index: 0, X: 0, Y: 0, Z: 0},
		{Index: 1, X: 1, Y: 0, Z: 0},
		{Index: 2, X: 0, Y: 1, Z: 0},
		{Index: 3, X: 0, Y: 0, Z: 1},
		{Index: 4, X: 1, Y: 1, Z: 1},
	}
	tets := DelaunayRefine(points, DefaultQualityThreshold)
	require.NotEmpty(t, tets)
	for _, tet := range tets {
		assert.True(t, tet.NonDegenerate())
		if tet.NonDegenerate() {
			assert.LessOrEqual(t, radiusEdgeRatio(tet), DefaultQualityThreshold+1e-9)
		}
	}
}

func TestDelaunayRefineIdempotent(t *testing.T) {
	points := []geom.Point3D{
		{Index: 0, X: 0, Y: 0, Z: 0},
		{Index: 1, X: 1, Y: 0, Z: 0},
		{Index: 2, X: 0, Y: 1, Z: 0},
		{Index: 3, X: 0, Y: 0, Z: 1},
	}
	once := DelaunayRefine(points, DefaultQualityThreshold)
	twicePoints := uniqueTetPoints(once)
	twice := DelaunayRefine(twicePoints, DefaultQualityThreshold)
	assert.Equal(t, len(once), len(twice))
}
