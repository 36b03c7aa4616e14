package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDomainOrdersBoundsRegardlessOfInputOrder(t *testing.T) {
	d := NewDomain(NewVector(1, 1), NewVector(0, 2))
	assert.True(t, d.Low().Equal(NewVector(0, 1), 1e-12))
	assert.True(t, d.High().Equal(NewVector(1, 2), 1e-12))
}

func TestNewDomainFromBoundsRejectsInvertedBounds(t *testing.T) {
	_, err := NewDomainFromBounds(NewVector(1, 0), NewVector(0, 1))
	assert.Error(t, err)
}

func TestNewDomainFromBoundsAcceptsValidBounds(t *testing.T) {
	d, err := NewDomainFromBounds(NewVector(0, 0), NewVector(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 1.0, d.Volume())
}

func TestNormalizedDomain(t *testing.T) {
	d := Normalized(3)
	assert.True(t, d.Contains(Repeat(3, 0.5)))
	assert.False(t, d.Contains(Repeat(3, 1.5)))
}

func TestNewDomainFromPointCloud(t *testing.T) {
	cloud := []Vector{NewVector(1, 1), NewVector(-1, 3), NewVector(0, 0)}
	d := NewDomainFromPointCloud(cloud)
	assert.True(t, d.Low().Equal(NewVector(-1, 0), 1e-12))
	assert.True(t, d.High().Equal(NewVector(1, 3), 1e-12))
}

func TestNewDomainFromPointCloudPanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { NewDomainFromPointCloud(nil) })
}

func TestDomainContainsIsInclusive(t *testing.T) {
	d := Normalized(2)
	assert.True(t, d.Contains(NewVector(0, 0)))
	assert.True(t, d.Contains(NewVector(1, 1)))
	assert.False(t, d.Contains(NewVector(-0.0001, 0.5)))
}

func TestDomainVolume(t *testing.T) {
	d, err := NewDomainFromBounds(NewVector(0, 0), NewVector(2, 3))
	require.NoError(t, err)
	assert.Equal(t, 6.0, d.Volume())
}

func TestProjectPointDomains(t *testing.T) {
	from := Normalized(2)
	to, err := NewDomainFromBounds(NewVector(10, 10), NewVector(20, 20))
	require.NoError(t, err)

	p := NewVector(0.5, 0.5)
	projected := ProjectPointDomains(p, from, to)
	assert.True(t, projected.Equal(NewVector(15, 15), 1e-9))
}

func TestDistanceToEdgeFindsNearestFace(t *testing.T) {
	d := Normalized(2)
	dist, err := d.DistanceToEdge(NewVector(0.5, 0.5), NewVector(1, 0))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, dist, 1e-12)
}

func TestDistanceToEdgeReturnsErrorForZeroDirection(t *testing.T) {
	d := Normalized(2)
	_, err := d.DistanceToEdge(NewVector(0.5, 0.5), NewVector(0, 0))
	assert.Error(t, err)
}
