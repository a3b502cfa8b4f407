package render

import (
	"sort"

	"github.com/deadsy/meshx/geom"
)

// SurfaceToVolume runs Marching Cubes over a scalar field to extract a
// surface, then grows a tetrahedral volume mesh from it with
// AdvancingFront. This converts an implicit surface directly into a
// volumetric mesh in one step.
func SurfaceToVolume(nx, ny, nz int, box geom.Box3, field geom.ScalarField, iso float64) []geom.Tetrahedron {
	faces := MarchingCubes(nx, ny, nz, box, field, iso)
	if len(faces) == 0 {
		return nil
	}
	points := uniqueFacePoints(faces)
	return AdvancingFront(faces, points)
}

// OctreeRefined fills box with OctreeFill and then improves element quality
// with DelaunayRefine, combining octree spatial subdivision for a coarse
// mesh with Delaunay refinement for shape.
func OctreeRefined(box geom.Box3, maxDepth int, domain geom.Predicate, qualityMax float64) []geom.Tetrahedron {
	tets := OctreeFill(box, maxDepth, domain)
	if len(tets) == 0 {
		return nil
	}
	points := uniqueTetPoints(tets)
	return DelaunayRefine(points, qualityMax)
}

// VoxelRefined fills box with VoxelFill and then improves element quality
// with DelaunayRefine.
func VoxelRefined(box geom.Box3, nx, ny, nz int, domain geom.Predicate, qualityMax float64) []geom.Tetrahedron {
	tets := VoxelFill(box, nx, ny, nz, domain)
	if len(tets) == 0 {
		return nil
	}
	points := uniqueTetPoints(tets)
	return DelaunayRefine(points, qualityMax)
}

// RefineTetrahedra re-meshes an existing tetrahedral mesh under a quality
// constraint by extracting its unique vertices and running DelaunayRefine.
func RefineTetrahedra(tets []geom.Tetrahedron, qualityMax float64) []geom.Tetrahedron {
	if len(tets) == 0 {
		return nil
	}
	points := uniqueTetPoints(tets)
	return DelaunayRefine(points, qualityMax)
}

// uniqueTetPoints collects the distinct vertices (by index) of a tetrahedral
// mesh, in ascending index order.
func uniqueTetPoints(tets []geom.Tetrahedron) []geom.Point3D {
	seen := make(map[int64]bool)
	points := make([]geom.Point3D, 0)
	for _, t := range tets {
		for _, v := range t.Vertices() {
			if !seen[v.Index] {
				seen[v.Index] = true
				points = append(points, v)
			}
		}
	}
	sortPoints3D(points)
	return points
}

// uniqueFacePoints collects the distinct vertices (by index) of a triangular
// face mesh, in ascending index order.
func uniqueFacePoints(faces []geom.Face) []geom.Point3D {
	seen := make(map[int64]bool)
	points := make([]geom.Point3D, 0)
	for _, f := range faces {
		for _, v := range f.Vertices() {
			if !seen[v.Index] {
				seen[v.Index] = true
				points = append(points, v)
			}
		}
	}
	sortPoints3D(points)
	return points
}

func sortPoints3D(points []geom.Point3D) {
	sort.Slice(points, func(i, j int) bool { return points[i].Index < points[j].Index })
}
