package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deadsy/meshx/geom"
)

func TestSurfaceFacesSingleTetrahedron(t *testing.T) {
	tet := geom.Tetrahedron{
		A: geom.Point3D{Index: 0, X: 0, Y: 0, Z: 0},
		B: geom.Point3D{Index: 1, X: 1, Y: 0, Z: 0},
		C: geom.Point3D{Index: 2, X: 0, Y: 1, Z: 0},
		D: geom.Point3D{Index: 3, X: 0, Y: 0, Z: 1},
	}
	faces := SurfaceFaces([]geom.Tetrahedron{tet})
	assert.Len(t, faces, 4)
}

func TestSurfaceFacesSharedFaceExcluded(t *testing.T) {
	a := geom.Point3D{Index: 0, X: 0, Y: 0, Z: 0}
	b := geom.Point3D{Index: 1, X: 1, Y: 0, Z: 0}
	c := geom.Point3D{Index: 2, X: 0, Y: 1, Z: 0}
	d := geom.Point3D{Index: 3, X: 0, Y: 0, Z: 1}
	e := geom.Point3D{Index: 4, X: 1, Y: 1, Z: 1}

	tet1 := geom.Tetrahedron{A: a, B: b, C: c, D: d}
	tet2 := geom.Tetrahedron{A: a, B: b, C: c, D: e}

	faces := SurfaceFaces([]geom.Tetrahedron{tet1, tet2})
	assert.Len(t, faces, 6)
}
