package search

import (
	"github.com/toazbenj/sembas-go/classifier"
	"github.com/toazbenj/sembas-go/geometry"
	"github.com/toazbenj/sembas-go/sample"
	"github.com/toazbenj/sembas-go/sembaserr"
)

// Mode selects how BetweenPoints explores the interval once a midpoint
// fails to match the target class.
type Mode int

const (
	// Full enqueues both halves of the interval, finding any qualifying
	// point.
	Full Mode = iota
	// Nearest enqueues only the half adjacent to the interval's first
	// endpoint, biasing the search toward a point close to p1.
	Nearest
)

type pointPair struct {
	p1, p2 geometry.Vector
}

// BetweenPoints searches the segment between p1 and p2 for a point
// classified as targetWithin, consuming at most maxSamples classifier
// queries. It returns ok=false if no such point was found within budget.
func BetweenPoints(mode Mode, targetWithin bool, maxSamples int, p1, p2 geometry.Vector, c classifier.Classifier) (geometry.Vector, bool, error) {
	queue := []pointPair{{p1, p2}}

	for i := 0; i < maxSamples; i++ {
		pair := queue[0]
		queue = queue[1:]

		s := pair.p2.Sub(pair.p1)
		mid := pair.p1.Add(s.Scale(0.5))
		result, err := c.Classify(mid)
		if err != nil {
			return geometry.Vector{}, false, err
		}
		if result.IsWithinMode() == targetWithin {
			return mid, true, nil
		}

		switch mode {
		case Full:
			queue = append(queue, pointPair{pair.p1, mid}, pointPair{mid, pair.p2})
		case Nearest:
			queue = append(queue, pointPair{pair.p1, mid})
		}
	}

	return geometry.Vector{}, false, nil
}

// BinarySurfaceSearch bisects between a WithinMode point t0 and an
// OutOfMode point x0 until the gap between them is within d, returning the
// halfspace the bisection converges to. It returns
// sembaserr.ErrMaxSamplesExceeded if the gap is still larger than d after
// maxSamples iterations.
func BinarySurfaceSearch(d float64, t0 sample.WithinMode, x0 sample.OutOfMode, maxSamples int, c classifier.Classifier) (sample.Halfspace, error) {
	pt := t0.P
	px := x0.P
	s := px.Sub(pt).Scale(0.5)

	i := 0
	for 2*s.Norm() > d {
		if i >= maxSamples {
			return sample.Halfspace{}, sembaserr.ErrMaxSamplesExceeded
		}
		mid := pt.Add(s)
		result, err := c.Classify(mid)
		if err != nil {
			return sample.Halfspace{}, err
		}
		if result.IsWithinMode() {
			pt = mid
		} else {
			px = mid
		}
		s = px.Sub(pt).Scale(0.5)
		i++
	}

	return sample.NewHalfspace(sample.WithinMode{P: pt}, s.Normalize()), nil
}
