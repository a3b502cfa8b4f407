package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deadsy/meshx/geom"
)

func sphereField() geom.ScalarField {
	return geom.ScalarFieldFunc(func(x, y, z float64) float64 {
		return x*x + y*y + z*z - 1
	})
}

func TestMarchingCubesSphere(t *testing.T) {
	box := geom.Box3{
		Min: geom.Point3D{X: -2, Y: -2, Z: -2},
		Max: geom.Point3D{X: 2, Y: 2, Z: 2},
	}
	faces := MarchingCubes(20, 20, 20, box, sphereField(), 0)
	assert.NotEmpty(t, faces)

	const tolerance = 0.2
	for _, f := range faces {
		for _, v := range f.Vertices() {
			r := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
			assert.InDelta(t, 1.0, r, tolerance)
		}
	}
}

func TestMarchingCubesNoSignChange(t *testing.T) {
	box := geom.Box3{
		Min: geom.Point3D{X: -1, Y: -1, Z: -1},
		Max: geom.Point3D{X: 1, Y: 1, Z: 1},
	}
	always10 := geom.ScalarFieldFunc(func(x, y, z float64) float64 { return 10 })
	faces := MarchingCubes(4, 4, 4, box, always10, 0)
	assert.Empty(t, faces)
}
