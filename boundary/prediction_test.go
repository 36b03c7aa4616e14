package boundary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/toazbenj/sembas-go/geometry"
	"github.com/toazbenj/sembas-go/sample"
)

func TestIsBehindHalfspace(t *testing.T) {
	n := geometry.Repeat(10, 1.0).Normalize()
	hs := sample.NewHalfspace(sample.WithinMode{P: geometry.Repeat(10, 0.5)}, n)

	within := []geometry.Vector{geometry.Zeros(10), geometry.Repeat(10, 0.499)}
	outOf := []geometry.Vector{geometry.Repeat(10, 1.0), geometry.Repeat(10, 0.501)}

	for _, p := range within {
		assert.True(t, IsBehindHalfspace(p, hs))
	}
	for _, p := range outOf {
		assert.False(t, IsBehindHalfspace(p, hs))
	}
}

func spherePlaneHalfspaces() []sample.Halfspace {
	axis := geometry.NewVector(1, 0, 0)
	c := geometry.NewVector(0.75, 0.5, 0.5)
	return []sample.Halfspace{
		sample.NewHalfspace(sample.WithinMode{P: c}, axis),
	}
}

func TestApproxPredictionAgreesNearBoundary(t *testing.T) {
	b := FromHalfspaces(3, spherePlaneHalfspaces())

	inner := ApproxPrediction(geometry.NewVector(0.5, 0.5, 0.5), b, 1)
	outer := ApproxPrediction(geometry.NewVector(1.0, 0.5, 0.5), b, 1)

	assert.True(t, inner.IsWithinMode())
	assert.False(t, outer.IsWithinMode())
}

func TestApproxGroupPredictionUnionAndIntersection(t *testing.T) {
	b1 := FromHalfspaces(3, spherePlaneHalfspaces())
	group := []Group{{Boundaries: []*Boundary{b1}, K: 1}}

	p := geometry.NewVector(0.5, 0.5, 0.5)
	union := ApproxGroupPrediction(Union, p, group)
	intersection := ApproxGroupPrediction(Intersection, p, group)

	assert.True(t, union.IsWithinMode())
	assert.True(t, intersection.IsWithinMode())
}
