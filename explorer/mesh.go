// Package explorer implements MeshExplorer, which expands a known boundary
// by repeatedly adhering from each discovered halfspace along its cardinal
// in-surface directions, maintaining a minimum separation between points
// via the boundary's spatial index.
package explorer

import (
	"github.com/toazbenj/sembas-go/adherer"
	"github.com/toazbenj/sembas-go/boundary"
	"github.com/toazbenj/sembas-go/classifier"
	"github.com/toazbenj/sembas-go/geometry"
	"github.com/toazbenj/sembas-go/report"
	"github.com/toazbenj/sembas-go/sample"
)

// path is a pending cardinal direction to adhere from, relative to the
// halfspace at the given boundary index.
type path struct {
	parent int
	v      geometry.Vector
}

// MeshExplorer explores a surface uniformly by stepping from every
// discovered halfspace along its 2(N-1) cardinal in-surface directions. The
// parent/child forest below is a plain parent-index-per-node slice, not a
// general graph type: the forest only ever needs append-child and
// get-parent, which a slice serves directly.
type MeshExplorer struct {
	d       float64
	margin  float64
	basis   geometry.Matrix
	idx     *boundary.Boundary
	parents []int
	queue   []path

	currentParent int
	adh           adherer.Adherer
	factory       adherer.Factory
}

// New creates a MeshExplorer. root is the first known boundary halfspace;
// d is the jump distance; margin (0 < margin < d, typically 0.8d-0.9d) is
// the overlap-rejection threshold.
func New(d float64, root sample.Halfspace, margin float64, factory adherer.Factory) *MeshExplorer {
	dim := root.B.P.Dim()
	e := &MeshExplorer{
		d:       d,
		margin:  margin,
		basis:   geometry.NewIdentity(dim),
		idx:     boundary.New(dim),
		factory: factory,
	}
	e.addChild(root, -1)
	return e
}

func (e *MeshExplorer) addChild(hs sample.Halfspace, parent int) int {
	id := e.idx.Append(hs)
	e.parents = append(e.parents, parent)
	for _, v := range geometry.CreateCardinals(hs.N, e.basis) {
		e.queue = append(e.queue, path{parent: id, v: v})
	}
	return id
}

func (e *MeshExplorer) checkOverlap(p geometry.Vector) bool {
	if e.idx.Len() == 0 {
		return false
	}
	nearest := e.idx.Get(e.idx.NearestIndex(p))
	return nearest.B.P.Sub(p).Norm() < e.margin
}

func (e *MeshExplorer) selectParent() (sample.Halfspace, int, geometry.Vector, bool) {
	for len(e.queue) > 0 {
		next := e.queue[0]
		e.queue = e.queue[1:]

		hs := e.idx.Get(next.parent)
		p := hs.B.P.Add(next.v.Scale(e.d))
		if !e.checkOverlap(p) {
			return hs, next.parent, next.v, true
		}
	}
	return sample.Halfspace{}, 0, geometry.Vector{}, false
}

// Step performs at most one classifier query and returns the resulting
// sample. A nil sample with a nil error means exploration is exhausted —
// the path queue is drained and no Adherer is active.
func (e *MeshExplorer) Step(c classifier.Classifier) (sample.Sample, error) {
	if e.adh == nil {
		if hs, id, v, ok := e.selectParent(); ok {
			e.currentParent = id
			e.adh = e.factory.AdhereFrom(hs, v.Scale(e.d))
		}
	}

	if e.adh == nil {
		return nil, nil
	}

	s, err := e.adh.SampleNext(c)
	if err != nil {
		e.adh = nil
		return nil, err
	}

	if e.adh.GetState().State == adherer.Found {
		newHs := e.adh.GetState().Halfspace
		e.addChild(newHs, e.currentParent)
		e.adh = nil
	}

	return s, nil
}

// Boundary returns the discovered halfspace sequence in discovery order.
func (e *MeshExplorer) Boundary() []sample.Halfspace {
	return e.idx.All()
}

// Index returns the spatial index backing overlap checks, for callers that
// need direct nearest-neighbor queries (e.g. FallsOnBoundary).
func (e *MeshExplorer) Index() *boundary.Boundary {
	return e.idx
}

// Backprop refines the normal of childID's parent by averaging the normals
// of every boundary point within margin of the parent's position. A root
// halfspace (no parent) is left untouched.
func (e *MeshExplorer) Backprop(childID int, margin float64) {
	parentID := e.parents[childID]
	if parentID < 0 {
		return
	}
	parent := e.idx.Get(parentID)

	neighbors := e.idx.WithinRadius(parent.B.P, margin)
	if len(neighbors) == 0 {
		return
	}

	sum := geometry.Zeros(parent.N.Dim())
	for _, idx := range neighbors {
		sum = sum.Add(e.idx.Get(idx).N)
	}
	newN := sum.Scale(1 / float64(len(neighbors))).Normalize()
	e.idx.Set(parentID, sample.NewHalfspace(parent.B, newN))
}

// LoadBoundary resets the explorer's index and forest from a previously
// saved boundary sequence, overwriting any in-progress exploration. The
// first halfspace becomes the new root; every other halfspace is attached
// as a child of its nearest already-loaded neighbor — an approximation,
// since the exact original parent/child structure is not serialized.
func (e *MeshExplorer) LoadBoundary(hs []sample.Halfspace) {
	if len(hs) == 0 {
		panic("explorer: LoadBoundary requires a non-empty boundary")
	}

	dim := hs[0].B.P.Dim()
	e.idx = boundary.New(dim)
	e.parents = nil
	e.queue = nil
	e.adh = nil

	for _, h := range hs {
		if e.idx.Len() == 0 {
			e.addChild(h, -1)
			continue
		}
		nearest := e.idx.NearestIndex(h.B.P)
		e.addChild(h, nearest)
	}
}

// Describe returns a JSON-serializable snapshot of the explorer's
// configuration and the boundary discovered so far.
func (e *MeshExplorer) Describe(adhererType string, adhererParams map[string]float64) report.ExplorationStatus {
	explorerParams := map[string]float64{"d": e.d, "margin": e.margin}
	return report.NewExplorationStatus("MeshExplorer", adhererType, explorerParams, adhererParams, e.idx.All(), "")
}
