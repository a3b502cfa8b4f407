package render

import "github.com/deadsy/meshx/geom"

// OctreeFill fills the region of box where domain holds with a tetrahedral
// mesh, built by recursively subdividing box into octants down to maxDepth.
// Each leaf cell evaluates domain at its center and, if inside, emits 5
// tetrahedra over 8 freshly labeled corners. Unlike VoxelFill, leaves never
// share vertex indices with their neighbours, so an octree mesh is not
// watertight at the vertex level.
func OctreeFill(box geom.Box3, maxDepth int, domain geom.Predicate) []geom.Tetrahedron {
	idx := geom.NewIndexSource(0)
	tets := make([]geom.Tetrahedron, 0)
	octreeRecurse(box, maxDepth, domain, idx, &tets)
	return tets
}

func octreeRecurse(box geom.Box3, depth int, domain geom.Predicate, idx *geom.IndexSource, tets *[]geom.Tetrahedron) {
	if depth <= 0 {
		center := box.Center()
		if !domain.Inside(center) {
			return
		}
		corners := octreeLeafCorners(box, idx)
		cell := fiveTetrahedra(corners)
		*tets = append(*tets, cell[:]...)
		return
	}

	mid := box.Center()
	for octant := 0; octant < 8; octant++ {
		child := octreeChildBox(box, mid, octant)
		octreeRecurse(child, depth-1, domain, idx, tets)
	}
}

// octreeChildBox returns the octant-th eighth of box, split at mid.
func octreeChildBox(box geom.Box3, mid geom.Point3D, octant int) geom.Box3 {
	lowX, highX := box.Min.X, box.Max.X
	lowY, highY := box.Min.Y, box.Max.Y
	lowZ, highZ := box.Min.Z, box.Max.Z

	var xr, yr, zr [2]float64
	if octant&1 == 0 {
		xr = [2]float64{lowX, mid.X}
	} else {
		xr = [2]float64{mid.X, highX}
	}
	if octant&2 == 0 {
		yr = [2]float64{lowY, mid.Y}
	} else {
		yr = [2]float64{mid.Y, highY}
	}
	if octant&4 == 0 {
		zr = [2]float64{lowZ, mid.Z}
	} else {
		zr = [2]float64{mid.Z, highZ}
	}

	return geom.Box3{
		Min: geom.Point3D{X: xr[0], Y: yr[0], Z: zr[0]},
		Max: geom.Point3D{X: xr[1], Y: yr[1], Z: zr[1]},
	}
}

// octreeLeafCorners builds a leaf's 8 corners with fresh, cell-local indices.
func octreeLeafCorners(box geom.Box3, idx *geom.IndexSource) hexCorners {
	corner := func(x, y, z float64) geom.Point3D {
		return geom.Point3D{Index: idx.Next(), X: x, Y: y, Z: z}
	}
	return hexCorners{
		corner(box.Min.X, box.Min.Y, box.Min.Z),
		corner(box.Max.X, box.Min.Y, box.Min.Z),
		corner(box.Max.X, box.Max.Y, box.Min.Z),
		corner(box.Min.X, box.Max.Y, box.Min.Z),
		corner(box.Min.X, box.Min.Y, box.Max.Z),
		corner(box.Max.X, box.Min.Y, box.Max.Z),
		corner(box.Max.X, box.Max.Y, box.Max.Z),
		corner(box.Min.X, box.Max.Y, box.Max.Z),
	}
}
