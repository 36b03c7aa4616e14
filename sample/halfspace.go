package sample

import "github.com/toazbenj/sembas-go/geometry"

// Halfspace is the smallest discrete unit of the explored surface: a point
// B known to be WithinMode, and a unit outward surface vector N pointing
// away from the envelope's interior. Invariant: ||N|| = 1 up to floating
// tolerance.
type Halfspace struct {
	B WithinMode
	N geometry.Vector
}

// NewHalfspace constructs a Halfspace from a within-mode boundary point and
// an outward normal. The caller is responsible for N being (approximately)
// unit length; use Validate to check it.
func NewHalfspace(b WithinMode, n geometry.Vector) Halfspace {
	return Halfspace{B: b, N: n}
}

// Validate reports whether N is within atol of unit length.
func (h Halfspace) Validate(atol float64) bool {
	norm := h.N.Norm()
	return norm > 1-atol && norm < 1+atol
}

// BoundaryPair witnesses that a boundary exists somewhere on the straight
// segment between a WithinMode point T and an OutOfMode point X.
type BoundaryPair struct {
	T WithinMode
	X OutOfMode
}

// NewBoundaryPair constructs a BoundaryPair.
func NewBoundaryPair(t WithinMode, x OutOfMode) BoundaryPair {
	return BoundaryPair{T: t, X: x}
}
