// Package sut provides small reference Classifier implementations —
// spheres, axis-aligned cubes, and clusters of spheres — used as test
// fixtures and demo systems-under-test. None of these model an actual
// external system; they exist so the rest of the module has something
// concrete to explore.
package sut

import (
	"github.com/toazbenj/sembas-go/classifier"
	"github.com/toazbenj/sembas-go/geometry"
	"github.com/toazbenj/sembas-go/sample"
	"github.com/toazbenj/sembas-go/sembaserr"
)

var _ classifier.Classifier = Sphere{}
var _ classifier.Classifier = Cube{}
var _ classifier.Classifier = SphereCluster{}

// Sphere classifies points within radius of center as WithinMode. Domain is
// an optional bounding box; points outside it are rejected as out of
// bounds regardless of the sphere test.
type Sphere struct {
	Center geometry.Vector
	Radius float64
	Domain *geometry.Domain
}

// NewSphere builds a Sphere classifier. domain may be nil to skip the
// bounds check.
func NewSphere(center geometry.Vector, radius float64, domain *geometry.Domain) Sphere {
	return Sphere{Center: center, Radius: radius, Domain: domain}
}

// Classify implements classifier.Classifier.
func (s Sphere) Classify(p geometry.Vector) (sample.Sample, error) {
	if s.Domain != nil && !s.Domain.Contains(p) {
		return nil, sembaserr.ErrOutOfBounds
	}
	return sample.FromClass(p, s.Center.Sub(p).Norm() <= s.Radius), nil
}

// Cube classifies points inside shape as WithinMode.
type Cube struct {
	Shape  geometry.Domain
	Domain *geometry.Domain
}

// NewCube builds a Cube classifier over the given hyperrectangle.
func NewCube(shape geometry.Domain, domain *geometry.Domain) Cube {
	return Cube{Shape: shape, Domain: domain}
}

// Classify implements classifier.Classifier.
func (c Cube) Classify(p geometry.Vector) (sample.Sample, error) {
	if c.Domain != nil && !c.Domain.Contains(p) {
		return nil, sembaserr.ErrOutOfBounds
	}
	return sample.FromClass(p, c.Shape.Contains(p)), nil
}

// SphereCluster classifies a point as WithinMode if it falls inside any of
// its spheres, modeling a disjoint-envelope SUT.
type SphereCluster struct {
	Spheres []Sphere
	Domain  *geometry.Domain
}

// NewSphereCluster builds a SphereCluster classifier.
func NewSphereCluster(spheres []Sphere, domain *geometry.Domain) SphereCluster {
	return SphereCluster{Spheres: spheres, Domain: domain}
}

// Classify implements classifier.Classifier.
func (sc SphereCluster) Classify(p geometry.Vector) (sample.Sample, error) {
	if sc.Domain != nil && !sc.Domain.Contains(p) {
		return nil, sembaserr.ErrOutOfBounds
	}
	for _, s := range sc.Spheres {
		if s.Center.Sub(p).Norm() <= s.Radius {
			return sample.FromClass(p, true), nil
		}
	}
	return sample.FromClass(p, false), nil
}
