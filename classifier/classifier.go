// Package classifier defines the oracle contract every exploration
// component is built against: a black-box function from an N-dimensional
// point to a Sample, or a sampling error.
package classifier

import (
	"github.com/toazbenj/sembas-go/geometry"
	"github.com/toazbenj/sembas-go/sample"
)

// Classifier is the system-under-test oracle. Implementations must be
// deterministic per point for a given SUT state; they are otherwise free to
// be in-process functions, wrappers around a simulation, or a network
// bridge (see package remote).
type Classifier interface {
	Classify(p geometry.Vector) (sample.Sample, error)
}

// Func adapts a plain function to the Classifier interface, the same way
// http.HandlerFunc adapts a function to http.Handler.
type Func func(p geometry.Vector) (sample.Sample, error)

// Classify implements Classifier.
func (f Func) Classify(p geometry.Vector) (sample.Sample, error) {
	return f(p)
}
