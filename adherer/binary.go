package adherer

import (
	"math"

	"github.com/toazbenj/sembas-go/classifier"
	"github.com/toazbenj/sembas-go/geometry"
	"github.com/toazbenj/sembas-go/sample"
	"github.com/toazbenj/sembas-go/sembaserr"
)

// BinarySearchAdherer finds a neighboring boundary halfspace by rotational
// bisection: each step rotates by a halving angle, toward the outside if the
// previous sample was WithinMode and toward the inside otherwise. It
// consumes exactly nIter classifier queries — a deterministic query budget —
// with boundary error bounded by ||v||*sin(initAngle / 2^(nIter-1)).
type BinarySearchAdherer struct {
	pivot      sample.Halfspace
	v          geometry.Vector
	rotFactory func(angle float64) geometry.Matrix
	angle      float64
	nIter      int
	hasPrev    bool
	prevWithin bool
	t          *sample.WithinMode
	x          *sample.OutOfMode
	status     Status
}

// NewBinarySearchAdherer constructs a BinarySearchAdherer. initAngle is
// typically 90-120 degrees in radians; nIter fixes the exact query budget.
func NewBinarySearchAdherer(pivot sample.Halfspace, v geometry.Vector, initAngle float64, nIter int) *BinarySearchAdherer {
	span := geometry.NewSpan(pivot.N, v)
	return &BinarySearchAdherer{
		pivot:      pivot,
		v:          v,
		rotFactory: span.Rotator,
		angle:      initAngle,
		nIter:      nIter,
		status:     Status{State: Searching},
	}
}

// GetState implements Adherer.
func (a *BinarySearchAdherer) GetState() Status {
	return a.status
}

// SampleNext implements Adherer.
func (a *BinarySearchAdherer) SampleNext(c classifier.Classifier) (sample.Sample, error) {
	var (
		cur sample.Sample
		err error
	)
	if !a.hasPrev {
		cur, err = a.takeInitialSample(c)
	} else {
		cur, err = a.takeSample(c)
	}
	if err != nil {
		return nil, err
	}

	a.nIter--
	if cur.IsWithinMode() {
		w := cur.(sample.WithinMode)
		a.t = &w
	} else {
		x := cur.(sample.OutOfMode)
		a.x = &x
	}
	a.prevWithin = cur.IsWithinMode()
	a.hasPrev = true

	if a.nIter == 0 {
		if a.t == nil || a.x == nil {
			return nil, sembaserr.ErrBoundaryLost
		}
		rot90 := a.rotFactory(math.Pi / 2)
		s := a.t.P.Sub(a.pivot.B.P)
		n := rot90.MulVector(s).Normalize()
		a.status = Status{State: Found, Halfspace: sample.NewHalfspace(*a.t, n)}
	}

	return cur, nil
}

func (a *BinarySearchAdherer) takeInitialSample(c classifier.Classifier) (sample.Sample, error) {
	cur := a.pivot.B.P.Add(a.v)
	return c.Classify(cur)
}

func (a *BinarySearchAdherer) takeSample(c classifier.Classifier) (sample.Sample, error) {
	cof := -1.0
	if a.prevWithin {
		cof = 1.0
	}
	rot := a.rotFactory(cof * a.angle)
	a.v = rot.MulVector(a.v)
	cur := a.pivot.B.P.Add(a.v)
	result, err := c.Classify(cur)
	if err != nil {
		return nil, err
	}
	a.angle /= 2
	return result, nil
}

// BinarySearchAdhererFactory builds BinarySearchAdherers sharing the same
// initAngle/nIter parameters.
type BinarySearchAdhererFactory struct {
	InitAngle float64
	NIter     int
}

// NewBinarySearchAdhererFactory constructs a BinarySearchAdhererFactory.
func NewBinarySearchAdhererFactory(initAngle float64, nIter int) BinarySearchAdhererFactory {
	return BinarySearchAdhererFactory{InitAngle: initAngle, NIter: nIter}
}

// AdhereFrom implements Factory.
func (f BinarySearchAdhererFactory) AdhereFrom(pivot sample.Halfspace, v geometry.Vector) Adherer {
	return NewBinarySearchAdherer(pivot, v, f.InitAngle, f.NIter)
}
