package search

import (
	"github.com/toazbenj/sembas-go/classifier"
	"github.com/toazbenj/sembas-go/sample"
	"github.com/toazbenj/sembas-go/sembaserr"
)

// FindInitialBoundaryPair repeatedly draws points from mc until at least one
// WithinMode and one OutOfMode sample have been observed, returning them as
// a BoundaryPair. It returns sembaserr.ErrMaxSamplesExceeded if maxSamples
// is exhausted first.
func FindInitialBoundaryPair(mc *MonteCarloSearch, maxSamples int, c classifier.Classifier) (sample.BoundaryPair, error) {
	var t *sample.WithinMode
	var x *sample.OutOfMode

	for i := 0; i < maxSamples; i++ {
		p := mc.Sample()
		result, err := c.Classify(p)
		if err != nil {
			return sample.BoundaryPair{}, err
		}
		if result.IsWithinMode() {
			w := result.(sample.WithinMode)
			t = &w
		} else {
			o := result.(sample.OutOfMode)
			x = &o
		}
		if t != nil && x != nil {
			return sample.NewBoundaryPair(*t, *x), nil
		}
	}

	return sample.BoundaryPair{}, sembaserr.ErrMaxSamplesExceeded
}
