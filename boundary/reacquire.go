package boundary

import (
	"github.com/toazbenj/sembas-go/classifier"
	"github.com/toazbenj/sembas-go/geometry"
	"github.com/toazbenj/sembas-go/sample"
	"github.com/toazbenj/sembas-go/search"
)

// Reacquire walks each halfspace in hs along its normal in steps of maxErr,
// in whichever direction keeps the classification observed at that
// halfspace's own point, until the classification flips or maxSteps is
// exhausted or the domain edge is reached. It is the cheap, incremental
// alternative to ReacquirePrecise — same halfspace count in queries, no
// find_opposing_boundary search, and correspondingly lower confidence that
// the reacquired point is actually the same surface region.
//
// Returns, per input halfspace, the reacquired halfspace (nil if it could
// not be reacquired) and its displacement from the original point.
func Reacquire(c classifier.Classifier, hs []sample.Halfspace, domain geometry.Domain, maxErr float64, maxSteps int) ([]*sample.Halfspace, []float64) {
	newHs := make([]*sample.Halfspace, len(hs))
	displacements := make([]float64, len(hs))
	for i, h := range hs {
		reacquired, disp, ok := reacquireOne(c, h, domain, maxErr, maxSteps)
		if ok {
			newHs[i] = &reacquired
			displacements[i] = disp
		}
	}
	return newHs, displacements
}

func reacquireOne(c classifier.Classifier, hs sample.Halfspace, domain geometry.Domain, maxErr float64, maxSteps int) (sample.Halfspace, float64, bool) {
	start, err := c.Classify(hs.B.P)
	if err != nil {
		return sample.Halfspace{}, 0, false
	}
	initial := start.IsWithinMode()

	dir, firstStep, firstWithin, ok := pickPreservingDirection(c, hs.B.P, hs.N, maxErr, initial)
	if !ok {
		return sample.Halfspace{}, 0, false
	}

	prev := hs.B.P
	prevWithin := initial
	next := firstStep
	nextWithin := firstWithin

	for step := 0; step < maxSteps; step++ {
		if nextWithin != prevWithin {
			var withinPoint geometry.Vector
			if nextWithin {
				withinPoint = next
			} else {
				withinPoint = prev
			}
			disp := withinPoint.Sub(hs.B.P).Norm()
			return sample.NewHalfspace(sample.WithinMode{P: withinPoint}, hs.N), disp, true
		}

		if _, derr := domain.DistanceToEdge(next, dir); derr != nil {
			return sample.Halfspace{}, 0, false
		}

		prev, prevWithin = next, nextWithin
		next = next.Add(dir.Scale(maxErr))
		result, err := c.Classify(next)
		if err != nil {
			return sample.Halfspace{}, 0, false
		}
		nextWithin = result.IsWithinMode()
	}

	return sample.Halfspace{}, 0, false
}

// pickPreservingDirection probes both +n and -n one step away from p and
// returns whichever direction's classification still matches initial, so
// the walk does not immediately flip on its first step.
func pickPreservingDirection(c classifier.Classifier, p, n geometry.Vector, maxErr float64, initial bool) (dir, next geometry.Vector, within bool, ok bool) {
	plus := n
	plusPoint := p.Add(plus.Scale(maxErr))
	if result, err := c.Classify(plusPoint); err == nil && result.IsWithinMode() == initial {
		return plus, plusPoint, result.IsWithinMode(), true
	}

	minus := n.Scale(-1)
	minusPoint := p.Add(minus.Scale(maxErr))
	if result, err := c.Classify(minusPoint); err == nil && result.IsWithinMode() == initial {
		return minus, minusPoint, result.IsWithinMode(), true
	}

	return geometry.Vector{}, geometry.Vector{}, false, false
}

// ReacquirePrecise reacquires every halfspace in hs using
// search.FindOpposingBoundary instead of the incremental walk, trading more
// classifier queries for higher confidence that the reacquired halfspace is
// the same surface region as before.
func ReacquirePrecise(c classifier.Classifier, hs []sample.Halfspace, domain geometry.Domain, maxErr float64, numChecks, numIter int) ([]sample.Halfspace, []float64, error) {
	newHs := make([]sample.Halfspace, len(hs))
	displacements := make([]float64, len(hs))

	for i, h := range hs {
		b, err := search.FindOpposingBoundary(maxErr, h.B.P, h.N, domain, c, numChecks, numIter)
		if err != nil {
			return nil, nil, err
		}
		s := b.B.P.Sub(h.B.P).Norm()
		newHs[i] = sample.NewHalfspace(b.B, h.N)
		displacements[i] = s
	}

	return newHs, displacements, nil
}
