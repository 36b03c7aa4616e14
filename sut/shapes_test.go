package sut

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toazbenj/sembas-go/geometry"
)

func TestSphereClassifiesInsideAndOutside(t *testing.T) {
	domain := geometry.Normalized(3)
	s := NewSphere(geometry.Repeat(3, 0.5), 0.25, &domain)

	inside, err := s.Classify(geometry.Repeat(3, 0.5))
	require.NoError(t, err)
	assert.True(t, inside.IsWithinMode())

	outside, err := s.Classify(geometry.NewVector(0.9, 0.9, 0.9))
	require.NoError(t, err)
	assert.False(t, outside.IsWithinMode())
}

func TestSphereRejectsOutOfDomain(t *testing.T) {
	domain := geometry.Normalized(2)
	s := NewSphere(geometry.Repeat(2, 0.5), 0.25, &domain)

	_, err := s.Classify(geometry.NewVector(5, 5))
	assert.Error(t, err)
}

func TestSphereWithNilDomainSkipsBoundsCheck(t *testing.T) {
	s := NewSphere(geometry.Zeros(2), 1.0, nil)
	result, err := s.Classify(geometry.NewVector(100, 100))
	require.NoError(t, err)
	assert.False(t, result.IsWithinMode())
}

func TestCubeClassifiesInsideAndOutside(t *testing.T) {
	shape := geometry.NewDomain(geometry.Repeat(2, 0.25), geometry.Repeat(2, 0.75))
	c := NewCube(shape, nil)

	inside, err := c.Classify(geometry.Repeat(2, 0.5))
	require.NoError(t, err)
	assert.True(t, inside.IsWithinMode())

	outside, err := c.Classify(geometry.Zeros(2))
	require.NoError(t, err)
	assert.False(t, outside.IsWithinMode())
}

func TestSphereClusterClassifiesInsideAnySphere(t *testing.T) {
	spheres := []Sphere{
		NewSphere(geometry.NewVector(0, 0), 0.1, nil),
		NewSphere(geometry.NewVector(1, 1), 0.1, nil),
	}
	cluster := NewSphereCluster(spheres, nil)

	near0, err := cluster.Classify(geometry.NewVector(0.05, 0.0))
	require.NoError(t, err)
	assert.True(t, near0.IsWithinMode())

	near1, err := cluster.Classify(geometry.NewVector(1.0, 0.95))
	require.NoError(t, err)
	assert.True(t, near1.IsWithinMode())

	between, err := cluster.Classify(geometry.NewVector(0.5, 0.5))
	require.NoError(t, err)
	assert.False(t, between.IsWithinMode())
}

func TestSphereClusterRejectsOutOfDomain(t *testing.T) {
	domain := geometry.Normalized(2)
	cluster := NewSphereCluster(nil, &domain)

	_, err := cluster.Classify(geometry.NewVector(-1, -1))
	assert.Error(t, err)
}
