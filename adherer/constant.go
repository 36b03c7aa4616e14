package adherer

import (
	"math"

	"github.com/toazbenj/sembas-go/classifier"
	"github.com/toazbenj/sembas-go/geometry"
	"github.com/toazbenj/sembas-go/sample"
	"github.com/toazbenj/sembas-go/sembaserr"
)

// ConstantAdherer pivots around a known boundary halfspace, taking
// fixed-angle rotations of the displacement vector until the classification
// flips. Step-to-step, ||v|| is preserved (rotation is an isometry); the
// resulting boundary error is bounded by ||v||*sin(deltaAngle).
type ConstantAdherer struct {
	span        geometry.Span
	pivot       sample.Halfspace
	v           geometry.Vector
	rot         *geometry.Matrix
	angle       float64
	deltaAngle  float64
	maxRotation float64
	prev        sample.Sample
	hasPrev     bool
	status      Status
}

// NewConstantAdherer constructs a ConstantAdherer. maxRotation<=0 defaults
// to pi (a half rotation).
func NewConstantAdherer(pivot sample.Halfspace, v geometry.Vector, deltaAngle, maxRotation float64) *ConstantAdherer {
	if maxRotation <= 0 {
		maxRotation = math.Pi
	}
	return &ConstantAdherer{
		span:        geometry.NewSpan(pivot.N, v),
		pivot:       pivot,
		v:           v,
		deltaAngle:  deltaAngle,
		maxRotation: maxRotation,
		status:      Status{State: Searching},
	}
}

// GetState implements Adherer.
func (a *ConstantAdherer) GetState() Status {
	return a.status
}

// SampleNext implements Adherer.
func (a *ConstantAdherer) SampleNext(c classifier.Classifier) (sample.Sample, error) {
	var (
		cur sample.Sample
		err error
	)
	if a.rot == nil {
		cur, err = a.takeInitialSample(c)
	} else {
		cur, err = a.takeSample(c)
	}
	if err != nil {
		return nil, err
	}

	if a.hasPrev && a.prev.IsWithinMode() != cur.IsWithinMode() {
		var b sample.WithinMode
		if cur.IsWithinMode() {
			b = cur.(sample.WithinMode)
		} else {
			b = a.prev.(sample.WithinMode)
		}
		s := b.P.Sub(a.pivot.B.P)
		rot90 := a.span.Rotator(math.Pi / 2)
		n := rot90.MulVector(s).Normalize()
		a.status = Status{State: Found, Halfspace: sample.NewHalfspace(b, n)}
	}

	if a.status.State == Searching && a.angle > a.maxRotation {
		return nil, sembaserr.ErrBoundaryLost
	}

	a.prev = cur
	a.hasPrev = true
	return cur, nil
}

func (a *ConstantAdherer) takeInitialSample(c classifier.Classifier) (sample.Sample, error) {
	cur := a.pivot.B.P.Add(a.v)
	result, err := c.Classify(cur)
	if err != nil {
		return nil, err
	}
	delta := a.deltaAngle
	if !result.IsWithinMode() {
		delta = -a.deltaAngle
	}
	rot := a.span.Rotator(delta)
	a.rot = &rot
	return result, nil
}

func (a *ConstantAdherer) takeSample(c classifier.Classifier) (sample.Sample, error) {
	a.v = a.rot.MulVector(a.v)
	cur := a.pivot.B.P.Add(a.v)
	result, err := c.Classify(cur)
	if err != nil {
		return nil, err
	}
	a.angle += a.deltaAngle
	return result, nil
}

// ConstantAdhererFactory builds ConstantAdherers sharing the same
// deltaAngle/maxRotation parameters.
type ConstantAdhererFactory struct {
	DeltaAngle  float64
	MaxRotation float64
}

// NewConstantAdhererFactory constructs a ConstantAdhererFactory. A
// maxRotation <= 0 defaults to pi.
func NewConstantAdhererFactory(deltaAngle, maxRotation float64) ConstantAdhererFactory {
	return ConstantAdhererFactory{DeltaAngle: deltaAngle, MaxRotation: maxRotation}
}

// AdhereFrom implements Factory.
func (f ConstantAdhererFactory) AdhereFrom(pivot sample.Halfspace, v geometry.Vector) Adherer {
	return NewConstantAdherer(pivot, v, f.DeltaAngle, f.MaxRotation)
}
