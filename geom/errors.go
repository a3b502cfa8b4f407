package geom

import (
	"errors"
	"fmt"
)

// Epsilon bounds floating-point comparisons against zero, e.g. when
// detecting a colinear circumcircle solve.
const Epsilon = 1e-9

// DegenerateVolumeEpsilon is the minimum absolute signed volume a
// tetrahedron must have to be considered geometrically valid.
const DegenerateVolumeEpsilon = 1e-15

// SuperVertexIndex marks a point synthesized by a primitive (a circumcenter,
// for instance) rather than supplied or indexed by a generator. Generators
// that emit such a point into a caller-visible mesh must assign it a fresh
// index of their own before returning.
const SuperVertexIndex = -1

//-----------------------------------------------------------------------------

// ErrEmptyInput is returned when a generator requires at least one point and
// received none.
var ErrEmptyInput = errors.New("meshx/geom: input point set is empty")

// InsufficientPointsError reports that a generator received fewer points
// than its minimum simplex requires.
type InsufficientPointsError struct {
	Got  int
	Need int
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("meshx/geom: insufficient points for triangulation: need at least %d, got %d", e.Need, e.Got)
}

// DegenerateInputError reports that a primitive was asked to compute the
// circumball of a flat simplex (colinear points in 2D, coplanar in 3D).
type DegenerateInputError struct {
	Kind string // "triangle" or "tetrahedron"
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("meshx/geom: degenerate %s, cannot compute circumball", e.Kind)
}
