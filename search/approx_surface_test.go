package search

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toazbenj/sembas-go/adherer"
	"github.com/toazbenj/sembas-go/geometry"
	"github.com/toazbenj/sembas-go/sample"
)

const approxSurfaceRadius = 0.25
const approxSurfaceJumpDist = 0.05

func perfectNormal(n int) geometry.Vector {
	values := make([]float64, n)
	values[0] = 1
	return geometry.NewVector(values...)
}

func boundaryPointOnAxis0(n int, radius, jumpDist float64) geometry.Vector {
	values := make([]float64, n)
	for i := range values {
		values[i] = 0.5
	}
	values[0] = 0.5 + radius - jumpDist*0.25
	return geometry.NewVector(values...)
}

func TestApproxSurfaceImprovesImperfectNormal(t *testing.T) {
	const n = 10
	domain := geometry.Normalized(n)
	c := sphereClassifier(repeat(n, 0.5), approxSurfaceRadius, domain)

	b := boundaryPointOnAxis0(n, approxSurfaceRadius, approxSurfaceJumpDist)
	imperfectN := repeat(n, 0.5).Normalize()
	hs := sample.NewHalfspace(sample.WithinMode{P: b}, imperfectN)

	factory := adherer.NewConstantAdhererFactory(5*math.Pi/180, 0)

	newHs, neighbors, samples, err := ApproxSurface(approxSurfaceJumpDist, hs, factory, c)
	require.NoError(t, err)
	assert.Len(t, neighbors, 2*(n-1))
	assert.NotEmpty(t, samples)
	assert.InDelta(t, 1.0, newHs.N.Norm(), 1e-9)

	correctN := perfectNormal(n)
	newErr := newHs.N.Angle(correctN) / math.Pi
	prevErr := imperfectN.Angle(correctN) / math.Pi
	assert.LessOrEqual(t, newErr, prevErr, "approx_surface should not increase normal error")
}
