// Package boundary maintains the discovered Halfspace sequence alongside an
// rtreego spatial index, and provides the surface-membership, prediction
// and reacquisition helpers built on top of that index. It depends on
// search (for FindOpposingBoundary, used by precise reacquisition) but
// never the other way around — search has no notion of a persisted
// boundary.
package boundary

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/toazbenj/sembas-go/geometry"
	"github.com/toazbenj/sembas-go/sample"
)

// pointEpsilon is the half-width used to turn a dimensionless point into
// the degenerate (but non-zero, as rtreego requires) rect rtreego indexes.
const pointEpsilon = 1e-9

// indexedPoint adapts a boundary point to rtreego.Spatial, carrying the
// point's position in the owning Boundary's halfspace slice.
type indexedPoint struct {
	index int
	p     geometry.Vector
}

// Bounds implements rtreego.Spatial.
func (n *indexedPoint) Bounds() *rtreego.Rect {
	dim := n.p.Dim()
	corner := make(rtreego.Point, dim)
	lengths := make([]float64, dim)
	for i := 0; i < dim; i++ {
		corner[i] = n.p.At(i)
		lengths[i] = pointEpsilon
	}
	rect, err := rtreego.NewRect(corner, lengths)
	if err != nil {
		// Only a dimension mismatch between corner and lengths can cause
		// this, and both slices are built from the same dim above.
		panic(err)
	}
	return rect
}

// Boundary is the append-only sequence of discovered halfspaces plus an
// eagerly-maintained rtreego index over their boundary points. Halfspaces
// retain stable integer identifiers: their position in the sequence never
// changes once appended.
type Boundary struct {
	halfspaces []sample.Halfspace
	tree       *rtreego.Rtree
	dim        int
}

// New returns an empty Boundary for points of the given dimension.
func New(dim int) *Boundary {
	return &Boundary{tree: rtreego.NewTree(dim, 25, 50), dim: dim}
}

// FromHalfspaces builds a Boundary from a previously discovered sequence,
// inserting each point into the index in order. rtreego has no STR
// bulk-loader in the pinned release, so this is a loop of Insert calls
// rather than a true bulk-load.
func FromHalfspaces(dim int, hs []sample.Halfspace) *Boundary {
	b := New(dim)
	for _, h := range hs {
		b.Append(h)
	}
	return b
}

// Append adds hs to the boundary and the spatial index, returning its
// stable index.
func (b *Boundary) Append(hs sample.Halfspace) int {
	idx := len(b.halfspaces)
	b.halfspaces = append(b.halfspaces, hs)
	b.tree.Insert(&indexedPoint{index: idx, p: hs.B.P})
	return idx
}

// Get returns the halfspace at index i.
func (b *Boundary) Get(i int) sample.Halfspace {
	return b.halfspaces[i]
}

// Set replaces the halfspace at index i without touching the spatial index
// (used by Backprop, which only ever updates a normal, not a position).
func (b *Boundary) Set(i int, hs sample.Halfspace) {
	b.halfspaces[i] = hs
}

// Len returns the number of halfspaces in the boundary.
func (b *Boundary) Len() int {
	return len(b.halfspaces)
}

// All returns the halfspace sequence in discovery order. The returned slice
// must not be mutated by the caller.
func (b *Boundary) All() []sample.Halfspace {
	return b.halfspaces
}

// NearestIndex returns the index of the boundary point nearest p. It
// panics if the boundary is empty; callers must check Len() first.
func (b *Boundary) NearestIndex(p geometry.Vector) int {
	corner := make(rtreego.Point, b.dim)
	for i := 0; i < b.dim; i++ {
		corner[i] = p.At(i)
	}
	nearest := rtreego.NearestNeighbor(corner, b.tree)
	if nearest == nil {
		panic("boundary: NearestIndex called on an empty Boundary")
	}
	return nearest.(*indexedPoint).index
}

// NearestIndices returns the indices of the k boundary points nearest p, in
// increasing order of distance.
func (b *Boundary) NearestIndices(k int, p geometry.Vector) []int {
	corner := make(rtreego.Point, b.dim)
	for i := 0; i < b.dim; i++ {
		corner[i] = p.At(i)
	}
	results := rtreego.NearestNeighbors(k, corner, b.tree)
	indices := make([]int, 0, len(results))
	for _, r := range results {
		if r == nil {
			continue
		}
		indices = append(indices, r.(*indexedPoint).index)
	}
	return indices
}

// WithinRadius returns the indices of every boundary point within radius of
// p, used by Backprop's neighbor-normal averaging.
func (b *Boundary) WithinRadius(p geometry.Vector, radius float64) []int {
	corner := make(rtreego.Point, b.dim)
	lengths := make([]float64, b.dim)
	for i := 0; i < b.dim; i++ {
		corner[i] = p.At(i) - radius
		lengths[i] = 2 * radius
	}
	rect, err := rtreego.NewRect(corner, lengths)
	if err != nil {
		panic(err)
	}

	var indices []int
	for _, obj := range b.tree.SearchIntersect(rect) {
		ip := obj.(*indexedPoint)
		if ip.p.Sub(p).Norm() <= radius {
			indices = append(indices, ip.index)
		}
	}
	return indices
}

// FallsOnBoundary reports whether hs is likely to already lie on the
// surface described by b, within jump distance d. It performs poorly at
// sharp corners and when d is at or below the envelope's smallest
// diameter — it is a coarse existing-region test, not a membership proof.
// Panics if b is empty, mirroring NearestIndex.
func FallsOnBoundary(d float64, hs sample.Halfspace, b *Boundary) bool {
	maxDist := d * math.Sqrt(float64(hs.N.Dim()))

	nearest := b.Get(b.NearestIndex(hs.B.P))
	dist := nearest.B.P.Sub(hs.B.P).Norm()
	if dist > maxDist {
		return false
	}
	return hs.N.Dot(nearest.N) >= 0
}
