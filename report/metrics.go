package report

import (
	"github.com/toazbenj/sembas-go/geometry"
	"github.com/toazbenj/sembas-go/sample"
)

// CenterOfMass returns the mean boundary point position.
func CenterOfMass(boundary []sample.Halfspace) geometry.Vector {
	total := boundary[0].B.P.Dim()
	sum := geometry.Zeros(total)
	for _, hs := range boundary {
		sum = sum.Add(hs.B.P)
	}
	return sum.Scale(1 / float64(len(boundary)))
}

// MeanDirection returns the mean (non-normalized) outward normal. A
// magnitude near 0 suggests a closed, roughly spherical envelope; a
// magnitude near 1 suggests a flat plane.
func MeanDirection(boundary []sample.Halfspace) geometry.Vector {
	sum := geometry.Zeros(boundary[0].N.Dim())
	for _, hs := range boundary {
		sum = sum.Add(hs.N)
	}
	return sum.Scale(1 / float64(len(boundary)))
}

// Curvature returns the mean of (b - centerOfMass)·n across the boundary:
// positive for a convex envelope such as a sphere (for a sphere centered on
// the points' center of mass it equals the radius), negative for a concave
// one, and 0 for a flat plane.
func Curvature(boundary []sample.Halfspace) float64 {
	com := CenterOfMass(boundary)
	var total float64
	for _, hs := range boundary {
		total += hs.B.P.Sub(com).Dot(hs.N)
	}
	return total / float64(len(boundary))
}

// Covariance returns the covariance matrix of the boundary points about
// their center of mass, divided by the number of points (not n-1),
// describing how spread out the envelope is.
func Covariance(boundary []sample.Halfspace) geometry.Matrix {
	com := CenterOfMass(boundary)
	dim := com.Dim()
	cov := geometry.NewMatrix(dim)
	for _, hs := range boundary {
		diff := hs.B.P.Sub(com)
		cov = cov.Add(geometry.Outer(diff, diff))
	}
	return cov.Scale(1 / float64(len(boundary)))
}
