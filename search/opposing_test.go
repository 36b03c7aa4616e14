package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toazbenj/sembas-go/geometry"
	"github.com/toazbenj/sembas-go/sample"
)

func TestFindOpposingBoundaryOnSphere(t *testing.T) {
	const n = 10
	center := repeat(n, 0.5)
	domain := geometry.Normalized(n)
	c := sphereClassifier(center, 0.25, domain)

	t0 := center
	v := perfectNormal(n)

	hs, err := FindOpposingBoundary(0.01, t0, v, domain, c, 20, 20)
	require.NoError(t, err)

	dist := hs.B.P.Sub(center).Norm()
	assert.InDelta(t, 0.25, dist, 0.02)
}

func TestFindChordsFromSphere(t *testing.T) {
	const n = 4
	center := repeat(n, 0.5)
	domain := geometry.Normalized(n)
	c := sphereClassifier(center, 0.25, domain)

	axis := perfectNormal(n)
	t0 := sample.WithinMode{P: center.Add(axis.Scale(0.24))}
	x0 := sample.OutOfMode{P: center.Add(axis.Scale(0.4))}
	pair := sample.NewBoundaryPair(t0, x0)

	chords, err := FindChords(0.01, pair, n-1, domain, c, 20, 20)
	require.NoError(t, err)
	assert.Len(t, chords, n-1)

	for _, chord := range chords {
		assert.InDelta(t, 0.25, chord.Near.B.P.Sub(center).Norm(), 0.03)
		assert.InDelta(t, 0.25, chord.Far.B.P.Sub(center).Norm(), 0.03)
	}
}
