// Package adherer implements the rotational line-search that finds a
// boundary halfspace neighboring a known pivot, in a specified in-surface
// direction. Two strategies are provided: ConstantAdherer (fixed-step
// rotation) and BinarySearchAdherer (rotational bisection); both satisfy
// the Adherer contract below.
package adherer

import (
	"github.com/toazbenj/sembas-go/classifier"
	"github.com/toazbenj/sembas-go/geometry"
	"github.com/toazbenj/sembas-go/sample"
)

// State is the lifecycle of an Adherer.
type State int

const (
	// Searching is the initial state; the Adherer has not yet crossed the
	// boundary.
	Searching State = iota
	// Found means the adherer has located a neighboring boundary
	// halfspace; further SampleNext calls are undefined.
	Found
)

// Status reports an Adherer's current lifecycle state and, once Found, the
// resulting Halfspace.
type Status struct {
	State     State
	Halfspace sample.Halfspace
}

// Adherer is a stateful, one-shot search for the boundary halfspace
// adjacent to a known pivot halfspace. Construction takes a pivot and an
// in-surface displacement vector v whose magnitude fixes the search step;
// the caller (normally an Explorer) guarantees v is approximately
// orthogonal to pivot.N — the Adherer does not re-check this.
//
// Once GetState reports Found, or SampleNext has returned a BoundaryLost or
// OutOfBounds error (the Adherer is then considered poisoned), the Adherer
// must not be stepped again.
type Adherer interface {
	// SampleNext performs exactly one classifier query, updates internal
	// state, and returns the observed sample or a sampling error.
	SampleNext(c classifier.Classifier) (sample.Sample, error)
	// GetState returns the Adherer's current lifecycle state.
	GetState() Status
}

// Factory builds an Adherer from a (pivot, v) pair, decoupling Explorers
// from the concrete Adherer strategy in use.
type Factory interface {
	AdhereFrom(pivot sample.Halfspace, v geometry.Vector) Adherer
}
