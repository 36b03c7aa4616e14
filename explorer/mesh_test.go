package explorer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toazbenj/sembas-go/adherer"
	"github.com/toazbenj/sembas-go/classifier"
	"github.com/toazbenj/sembas-go/geometry"
	"github.com/toazbenj/sembas-go/sample"
	"github.com/toazbenj/sembas-go/sembaserr"
)

func sphereClassifier(center geometry.Vector, radius float64, domain geometry.Domain) classifier.Func {
	return func(p geometry.Vector) (sample.Sample, error) {
		if !domain.Contains(p) {
			return nil, sembaserr.ErrOutOfBounds
		}
		return sample.FromClass(p, p.Sub(center).Norm() < radius), nil
	}
}

func sphereRootHalfspace(n int, center geometry.Vector, radius float64) sample.Halfspace {
	values := make([]float64, n)
	values[0] = 1
	axis := geometry.NewVector(values...)
	b := center.Add(axis.Scale(radius))
	return sample.NewHalfspace(sample.WithinMode{P: b}, axis)
}

func TestMeshExplorerDiscoversBoundaryAroundSphere(t *testing.T) {
	const n = 10
	center := geometry.Repeat(n, 0.5)
	domain := geometry.Normalized(n)
	c := sphereClassifier(center, 0.25, domain)

	root := sphereRootHalfspace(n, center, 0.25)
	factory := adherer.NewConstantAdhererFactory(15*math.Pi/180, math.Pi)

	e := New(0.05, root, 0.045, factory)

	const maxBoundaryPoints = 200
	for i := 0; i < 20000 && len(e.Boundary()) < maxBoundaryPoints; i++ {
		s, err := e.Step(c)
		if err != nil {
			continue
		}
		if s == nil {
			break
		}
	}

	require.Greater(t, len(e.Boundary()), 1)
	for _, hs := range e.Boundary() {
		dist := hs.B.P.Sub(center).Norm()
		assert.InDelta(t, 0.25, dist, 0.05)
	}
}

func TestMeshExplorerStepReturnsNilWhenExhausted(t *testing.T) {
	const n = 3
	center := geometry.Repeat(n, 0.5)
	domain := geometry.Normalized(n)
	c := sphereClassifier(center, 10.0, domain) // whole domain is within mode

	root := sphereRootHalfspace(n, center, 10.0)
	factory := adherer.NewConstantAdhererFactory(30*math.Pi/180, math.Pi)
	e := New(0.5, root, 0.45, factory)

	steps := 0
	for steps < 10000 {
		s, err := e.Step(c)
		if s == nil && err == nil {
			break
		}
		steps++
	}
	assert.Less(t, steps, 10000, "explorer never reported exhaustion")
}

func TestMeshExplorerLoadBoundaryRebuildsIndex(t *testing.T) {
	const n = 3
	center := geometry.Repeat(n, 0.5)
	root := sphereRootHalfspace(n, center, 0.25)
	factory := adherer.NewConstantAdhererFactory(15*math.Pi/180, math.Pi)
	e := New(0.05, root, 0.045, factory)

	saved := []sample.Halfspace{root,
		sample.NewHalfspace(sample.WithinMode{P: geometry.NewVector(0.5, 0.75, 0.5)}, geometry.NewVector(0, 1, 0)),
	}
	e.LoadBoundary(saved)

	assert.Len(t, e.Boundary(), 2)
}

func TestMeshExplorerBackpropAveragesParentNormal(t *testing.T) {
	const n = 2
	root := sample.NewHalfspace(sample.WithinMode{P: geometry.NewVector(0, 0)}, geometry.NewVector(1, 0))
	factory := adherer.NewConstantAdhererFactory(15*math.Pi/180, math.Pi)
	e := New(0.1, root, 0.09, factory)

	childID := e.addChild(sample.NewHalfspace(sample.WithinMode{P: geometry.NewVector(0, 0)}, geometry.NewVector(0, 1)), 0)
	e.Backprop(childID, 1.0)

	parent := e.idx.Get(0)
	assert.InDelta(t, 1.0, parent.N.Norm(), 1e-9)
}
