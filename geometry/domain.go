package geometry

import (
	"fmt"
	"math"

	"github.com/toazbenj/sembas-go/sembaserr"
)

// Domain is an axis-aligned hyperrectangle {low, high} with low_i <= high_i
// for every dimension i. It describes the valid input region a classifier
// may be queried over.
type Domain struct {
	low, high Vector
}

// NewDomain returns the domain bounded by p1 and p2, taking the componentwise
// min as low and the componentwise max as high so callers need not know
// which corner is which.
func NewDomain(p1, p2 Vector) Domain {
	return Domain{low: p1.Min(p2), high: p1.Max(p2)}
}

// NewDomainFromBounds returns a domain with the exact bounds given. It
// returns an error if low_i > high_i for any dimension, instead of the
// original's unsafe unchecked constructor.
func NewDomainFromBounds(low, high Vector) (Domain, error) {
	low.mustMatch(high)
	for i := 0; i < low.Dim(); i++ {
		if low.At(i) > high.At(i) {
			return Domain{}, fmt.Errorf("geometry: low[%d]=%g exceeds high[%d]=%g", i, low.At(i), i, high.At(i))
		}
	}
	return Domain{low: low, high: high}, nil
}

// Normalized returns the n-dimensional [0, 1]^n domain.
func Normalized(n int) Domain {
	return Domain{low: Zeros(n), high: Repeat(n, 1)}
}

// NewDomainFromPointCloud returns the smallest domain enclosing every point
// in cloud. Panics if cloud is empty.
func NewDomainFromPointCloud(cloud []Vector) Domain {
	if len(cloud) == 0 {
		panic("geometry: point cloud is empty")
	}
	low := cloud[0]
	high := cloud[0]
	for _, p := range cloud[1:] {
		low = low.Min(p)
		high = high.Max(p)
	}
	return Domain{low: low, high: high}
}

// Low returns the domain's lower bound.
func (d Domain) Low() Vector {
	return d.low
}

// High returns the domain's upper bound.
func (d Domain) High() Vector {
	return d.high
}

// Dimensions returns the size of each dimension (high - low).
func (d Domain) Dimensions() Vector {
	return d.high.Sub(d.low)
}

// Volume returns the product of the domain's extents.
func (d Domain) Volume() float64 {
	dims := d.Dimensions()
	v := 1.0
	for i := 0; i < dims.Dim(); i++ {
		v *= dims.At(i)
	}
	return v
}

// Contains reports whether p lies within the domain's bounds, inclusive.
func (d Domain) Contains(p Vector) bool {
	for i := 0; i < p.Dim(); i++ {
		if p.At(i) < d.low.At(i) || p.At(i) > d.high.At(i) {
			return false
		}
	}
	return true
}

// ProjectPointDomains projects p from domain "from" into domain "to",
// preserving p's relative position within "from".
func ProjectPointDomains(p Vector, from, to Domain) Vector {
	return p.Sub(from.low).ComponentDiv(from.Dimensions()).ComponentMul(to.Dimensions()).Add(to.low)
}

// DistanceToEdge returns the smallest non-negative t such that p + t*v lies
// on the domain's boundary, computed as the minimum over axes of the slab
// intersections with t >= 0. Returns sembaserr.ErrOutOfBounds if no
// non-negative t exists in any axis.
func (d Domain) DistanceToEdge(p, v Vector) (float64, error) {
	n := p.Dim()
	var (
		lower   = math.Inf(1)
		upper   = math.Inf(1)
		haveAny bool
	)
	for i := 0; i < n; i++ {
		if v.At(i) == 0 {
			continue
		}
		tLow := (d.low.At(i) - p.At(i)) / v.At(i)
		tHigh := (d.high.At(i) - p.At(i)) / v.At(i)
		if tLow >= 0 && tLow < lower {
			lower = tLow
			haveAny = true
		}
		if tHigh >= 0 && tHigh < upper {
			upper = tHigh
			haveAny = true
		}
	}
	if !haveAny {
		return 0, sembaserr.ErrOutOfBounds
	}
	return math.Min(lower, upper), nil
}
