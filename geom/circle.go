package geom

// Circle is a center plus a radius, used as the circumcircle of a Triangle.
type Circle struct {
	Center Point2D
	Radius float64
}

// Contains reports whether p lies inside or on the boundary of the circle.
// On-boundary counts as inside, per the Bowyer-Watson tie-breaking rule.
func (c Circle) Contains(p Point2D) bool {
	return c.Center.DistanceSquared(p) <= c.Radius*c.Radius
}

// Sphere is a center plus a radius, used as the circumsphere of a Tetrahedron.
type Sphere struct {
	Center Point3D
	Radius float64
}

// Contains reports whether p lies inside or on the boundary of the sphere.
func (s Sphere) Contains(p Point3D) bool {
	return s.Center.DistanceSquared(p) <= s.Radius*s.Radius
}
