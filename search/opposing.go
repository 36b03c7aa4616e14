package search

import (
	"github.com/toazbenj/sembas-go/classifier"
	"github.com/toazbenj/sembas-go/geometry"
	"github.com/toazbenj/sembas-go/sample"
)

// FindOpposingBoundary finds the boundary halfspace on the far side of the
// envelope from t0 along direction v, coping with intervening OutOfMode
// gaps. maxErr is the binary_surface_search resolution, numChecks bounds
// each BetweenPoints call, and numIter bounds the final BinarySurfaceSearch.
func FindOpposingBoundary(maxErr float64, t0, v geometry.Vector, domain geometry.Domain, c classifier.Classifier, numChecks, numIter int) (sample.Halfspace, error) {
	dist, err := domain.DistanceToEdge(t0, v)
	if err != nil {
		return sample.Halfspace{}, err
	}
	p := t0.Add(v.Scale(0.999 * dist))

	pResult, err := c.Classify(p)
	if err != nil {
		return sample.Halfspace{}, err
	}

	if pResult.IsWithinMode() {
		// The envelope extends all the way to the domain edge along v;
		// there is no OutOfMode point to pair against, so p itself is
		// the reported far-side witness.
		return sample.NewHalfspace(pResult.(sample.WithinMode), v.Normalize()), nil
	}

	x := pResult.(sample.OutOfMode)
	found, ok, err := BetweenPoints(Nearest, true, numChecks, t0, p, c)
	if err != nil {
		return sample.Halfspace{}, err
	}
	if !ok {
		return sample.Halfspace{}, classifierBoundaryNotFoundError{}
	}
	result, err := c.Classify(found)
	if err != nil {
		return sample.Halfspace{}, err
	}
	t := result.(sample.WithinMode)

	// Gap elimination: while full bisection between t and t0 still finds
	// an OutOfMode gap, re-bisect (nearest-first) between t0 and that gap
	// to pull t closer to t0, eliminating intervening envelopes.
	for {
		gap, ok, err := BetweenPoints(Full, false, numChecks, t.P, t0, c)
		if err != nil {
			return sample.Halfspace{}, err
		}
		if !ok {
			break
		}
		closer, ok, err := BetweenPoints(Nearest, true, numChecks, t0, gap, c)
		if err != nil {
			return sample.Halfspace{}, err
		}
		if !ok {
			break
		}
		result, err := c.Classify(closer)
		if err != nil {
			return sample.Halfspace{}, err
		}
		t = result.(sample.WithinMode)
		x = sample.OutOfMode{P: gap}
	}

	return BinarySurfaceSearch(maxErr, t, x, numIter, c)
}

type classifierBoundaryNotFoundError struct{}

func (classifierBoundaryNotFoundError) Error() string {
	return "search: no WithinMode point found between t0 and the domain edge"
}

// Chord is a pair of halfspaces on opposite sides of an envelope, found by
// FindChords along a single axis.
type Chord struct {
	Near, Far sample.Halfspace
}

// FindChords builds an orthonormal basis whose first axis aligns with
// t - x (initialPair's within/out-of-mode points), then in each of the
// first ndim cardinal directions of that basis runs FindOpposingBoundary in
// both +axis and -axis from the envelope's estimated midpoint, yielding
// ndim chords. ndim is capped at the ambient dimension minus one, the
// number of cardinal directions a basis actually has.
func FindChords(maxErr float64, initialPair sample.BoundaryPair, ndim int, domain geometry.Domain, c classifier.Classifier, numChecks, numIter int) ([]Chord, error) {
	axis0 := initialPair.T.P.Sub(initialPair.X.P).Normalize()
	basis := geometry.NewIdentity(axis0.Dim())
	cardinals := geometry.CreateCardinals(axis0, basis)

	// The envelope's midpoint is estimated as the middle of the chord from
	// initialPair.T across the envelope along axis0 (away from initialPair.X).
	opposite, err := FindOpposingBoundary(maxErr, initialPair.T.P, axis0, domain, c, numChecks, numIter)
	if err != nil {
		return nil, err
	}
	mid := initialPair.T.P.Add(opposite.B.P).Scale(0.5)

	if max := len(cardinals) / 2; ndim > max {
		ndim = max
	}

	chords := make([]Chord, 0, ndim)
	for i := 0; i < 2*ndim; i += 2 {
		pos := cardinals[i]
		neg := cardinals[i+1]

		near, err := FindOpposingBoundary(maxErr, mid, pos, domain, c, numChecks, numIter)
		if err != nil {
			return chords, err
		}
		far, err := FindOpposingBoundary(maxErr, mid, neg, domain, c, numChecks, numIter)
		if err != nil {
			return chords, err
		}
		chords = append(chords, Chord{Near: near, Far: far})
	}

	return chords, nil
}
