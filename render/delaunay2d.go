package render

import "github.com/deadsy/meshx/geom"

// Delaunay2D triangulates points with the incremental Bowyer-Watson
// algorithm. Returns ErrEmptyInput if points is empty, or an
// InsufficientPointsError if fewer than three points are given.
func Delaunay2D(points []geom.Point2D) ([]geom.Triangle, error) {
	if len(points) == 0 {
		return nil, geom.ErrEmptyInput
	}
	if len(points) < 3 {
		return nil, &geom.InsufficientPointsError{Got: len(points), Need: 3}
	}

	super := superTriangle(points)
	triangles := []geom.Triangle{super}

	for _, p := range points {
		triangles = bowyerWatsonInsert2D(triangles, p)
	}

	result := make([]geom.Triangle, 0, len(triangles))
	for _, tri := range triangles {
		if isSuperVertex2D(tri.A) || isSuperVertex2D(tri.B) || isSuperVertex2D(tri.C) {
			continue
		}
		result = append(result, tri)
	}
	return result, nil
}

// bowyerWatsonInsert2D performs one point insertion: locate bad triangles
// whose circumcircle contains p, extract the cavity boundary, excise the bad
// triangles, and refill the cavity with triangles fanned from p.
func bowyerWatsonInsert2D(triangles []geom.Triangle, p geom.Point2D) []geom.Triangle {
	bad := make([]geom.Triangle, 0)
	good := make([]geom.Triangle, 0, len(triangles))

	for _, tri := range triangles {
		circ, err := tri.Circumcircle()
		if err == nil && circ.Contains(p) {
			bad = append(bad, tri)
		} else {
			good = append(good, tri)
		}
	}

	boundary := make([]geom.Edge, 0)
	for i, tri := range bad {
		for _, e := range tri.Edges() {
			shared := false
			for j, other := range bad {
				if i == j {
					continue
				}
				for _, oe := range other.Edges() {
					if e.Equal(oe) {
						shared = true
						break
					}
				}
				if shared {
					break
				}
			}
			if !shared {
				boundary = append(boundary, e)
			}
		}
	}

	for _, e := range boundary {
		good = append(good, geom.Triangle{A: e.Start, B: e.End, C: p})
	}
	return good
}
