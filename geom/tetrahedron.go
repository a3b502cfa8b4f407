package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Tetrahedron is an ordered quadruple of Point3D.
type Tetrahedron struct {
	A, B, C, D Point3D
}

// Vertices returns the tetrahedron's four corners, unordered identity.
func (t Tetrahedron) Vertices() [4]Point3D {
	return [4]Point3D{t.A, t.B, t.C, t.D}
}

// Faces returns the tetrahedron's four triangular faces.
func (t Tetrahedron) Faces() [4]Face {
	return [4]Face{
		{A: t.A, B: t.B, C: t.C},
		{A: t.A, B: t.B, C: t.D},
		{A: t.A, B: t.C, C: t.D},
		{A: t.B, B: t.C, C: t.D},
	}
}

// Equal reports whether t and o share the same vertex set, ignoring order.
func (t Tetrahedron) Equal(o Tetrahedron) bool {
	tv := t.Vertices()
	ov := o.Vertices()
	for _, v := range ov {
		found := false
		for _, w := range tv {
			if v == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// ContainsFace reports whether all three vertices of f are among t's vertices.
func (t Tetrahedron) ContainsFace(f Face) bool {
	v := t.Vertices()
	has := func(p Point3D) bool {
		return p == v[0] || p == v[1] || p == v[2] || p == v[3]
	}
	fv := f.Vertices()
	return has(fv[0]) && has(fv[1]) && has(fv[2])
}

// SignedVolume returns ((b-a) . ((c-a) x (d-a))) / 6.
func (t Tetrahedron) SignedVolume() float64 {
	u := r3.Sub(t.B.Vec(), t.A.Vec())
	v := r3.Sub(t.C.Vec(), t.A.Vec())
	w := r3.Sub(t.D.Vec(), t.A.Vec())
	return r3.Dot(u, r3.Cross(v, w)) / 6.0
}

// Circumsphere translates the tetrahedron so A sits at the origin and solves
// the 3x3 system whose coefficients are the edge vectors from A. The
// determinant is 6 times the signed volume; a flat tetrahedron (zero
// determinant) must have been rejected by the caller before this is reached.
func (t Tetrahedron) Circumsphere() Sphere {
	b := r3.Sub(t.B.Vec(), t.A.Vec())
	c := r3.Sub(t.C.Vec(), t.A.Vec())
	d := r3.Sub(t.D.Vec(), t.A.Vec())

	bSq := r3.Dot(b, b)
	cSq := r3.Dot(c, c)
	dSq := r3.Dot(d, d)

	det := b.X*(c.Y*d.Z-c.Z*d.Y) - b.Y*(c.X*d.Z-c.Z*d.X) + b.Z*(c.X*d.Y-c.Y*d.X)
	invDet := 1.0 / (2.0 * det)

	ux := (bSq*(c.Y*d.Z-c.Z*d.Y) - cSq*(b.Y*d.Z-b.Z*d.Y) + dSq*(b.Y*c.Z-b.Z*c.Y)) * invDet
	uy := -(bSq*(c.X*d.Z-c.Z*d.X) - cSq*(b.X*d.Z-b.Z*d.X) + dSq*(b.X*c.Z-b.Z*c.X)) * invDet
	uz := (bSq*(c.X*d.Y-c.Y*d.X) - cSq*(b.X*d.Y-b.Y*d.X) + dSq*(b.X*c.Y-b.Y*c.X)) * invDet

	center := Point3D{
		Index: SuperVertexIndex,
		X:     t.A.X + ux,
		Y:     t.A.Y + uy,
		Z:     t.A.Z + uz,
	}

	return Sphere{Center: center, Radius: center.Distance(t.A)}
}

// NonDegenerate reports whether the tetrahedron has non-zero signed volume.
func (t Tetrahedron) NonDegenerate() bool {
	return math.Abs(t.SignedVolume()) > DegenerateVolumeEpsilon
}
