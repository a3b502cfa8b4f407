package render

import "github.com/deadsy/meshx/geom"

// SurfaceFaces returns the boundary (surface) faces of a tetrahedral mesh:
// every face that belongs to exactly one tetrahedron. A face shared by two
// tetrahedra is interior and is excluded.
func SurfaceFaces(tets []geom.Tetrahedron) []geom.Face {
	type countedFace struct {
		face  geom.Face
		count int
	}

	counted := make([]countedFace, 0)

	for _, t := range tets {
		for _, f := range t.Faces() {
			found := false
			for i := range counted {
				if counted[i].face.Equal(f) {
					counted[i].count++
					found = true
					break
				}
			}
			if !found {
				counted = append(counted, countedFace{face: f, count: 1})
			}
		}
	}

	result := make([]geom.Face, 0, len(counted))
	for _, cf := range counted {
		if cf.count == 1 {
			result = append(result, cf.face)
		}
	}
	return result
}
