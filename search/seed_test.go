package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toazbenj/sembas-go/geometry"
	"github.com/toazbenj/sembas-go/sembaserr"
)

func TestFindInitialBoundaryPairFindsBoth(t *testing.T) {
	domain := geometry.Normalized(10)
	c := sphereClassifier(repeat(10, 0.5), 0.25, domain)
	mc := NewMonteCarloSearch(domain, 1)

	// A 10-D ball of radius 0.25 fills only about 2.4e-6 of the unit cube,
	// so the sample budget has to be large.
	pair, err := FindInitialBoundaryPair(mc, 1000000, c)
	require.NoError(t, err)
	assert.True(t, pair.T.P.Sub(repeat(10, 0.5)).Norm() < 0.25)
	assert.False(t, pair.X.P.Sub(repeat(10, 0.5)).Norm() < 0.25)
}

func TestFindInitialBoundaryPairExhaustsBudget(t *testing.T) {
	domain := geometry.Normalized(10)
	// A sphere so small relative to the domain that an empty-within search
	// budget won't hit it.
	c := sphereClassifier(repeat(10, 0.5), 1e-6, domain)
	mc := NewMonteCarloSearch(domain, 1)

	_, err := FindInitialBoundaryPair(mc, 3, c)
	assert.ErrorIs(t, err, sembaserr.ErrMaxSamplesExceeded)
}
