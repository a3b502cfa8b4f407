package render

import "github.com/deadsy/meshx/geom"

// VoxelFill fills the region of box where domain holds with a tetrahedral
// mesh, built from a uniform nx*ny*nz grid of hexahedral cells. A cell is
// filled (decomposed into 5 tetrahedra) when its center satisfies domain.
// Vertex indices are derived from grid coordinates so neighbouring filled
// cells share vertices on their common face, keeping the result watertight.
func VoxelFill(box geom.Box3, nx, ny, nz int, domain geom.Predicate) []geom.Tetrahedron {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil
	}

	dx := (box.Max.X - box.Min.X) / float64(nx)
	dy := (box.Max.Y - box.Min.Y) / float64(ny)
	dz := (box.Max.Z - box.Min.Z) / float64(nz)

	stride := gridStride{nx: nx + 1, ny: ny + 1}
	vertexAt := func(ix, iy, iz int) geom.Point3D {
		return geom.Point3D{
			Index: stride.index(ix, iy, iz),
			X:     box.Min.X + float64(ix)*dx,
			Y:     box.Min.Y + float64(iy)*dy,
			Z:     box.Min.Z + float64(iz)*dz,
		}
	}

	tets := make([]geom.Tetrahedron, 0)

	for iz := 0; iz < nz; iz++ {
		for iy := 0; iy < ny; iy++ {
			for ix := 0; ix < nx; ix++ {
				cx := box.Min.X + (float64(ix)+0.5)*dx
				cy := box.Min.Y + (float64(iy)+0.5)*dy
				cz := box.Min.Z + (float64(iz)+0.5)*dz
				if !domain.Inside(geom.Point3D{X: cx, Y: cy, Z: cz}) {
					continue
				}

				corners := hexCorners{
					vertexAt(ix, iy, iz), vertexAt(ix+1, iy, iz),
					vertexAt(ix+1, iy+1, iz), vertexAt(ix, iy+1, iz),
					vertexAt(ix, iy, iz+1), vertexAt(ix+1, iy, iz+1),
					vertexAt(ix+1, iy+1, iz+1), vertexAt(ix, iy+1, iz+1),
				}
				cell := fiveTetrahedra(corners)
				tets = append(tets, cell[:]...)
			}
		}
	}
	return tets
}

// gridStride derives a flat vertex index from integer grid coordinates,
// the position-to-index function every cell in a uniform grid shares.
type gridStride struct {
	nx, ny int
}

func (s gridStride) index(ix, iy, iz int) int64 {
	return int64(ix) + int64(iy)*int64(s.nx) + int64(iz)*int64(s.nx)*int64(s.ny)
}
