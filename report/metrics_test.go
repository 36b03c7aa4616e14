package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/toazbenj/sembas-go/geometry"
	"github.com/toazbenj/sembas-go/sample"
)

func unitSphereBoundary() []sample.Halfspace {
	dirs := [][2]float64{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	hs := make([]sample.Halfspace, len(dirs))
	for i, d := range dirs {
		n := geometry.NewVector(d[0], d[1])
		hs[i] = sample.NewHalfspace(sample.WithinMode{P: n}, n)
	}
	return hs
}

func TestCurvatureOfSphereIsPositive(t *testing.T) {
	hs := unitSphereBoundary()
	// Each b == n here (unit sphere centered at origin), so (b-com)·n == 1
	// for every point: curvature should be exactly 1.
	assert.InDelta(t, 1.0, Curvature(hs), 1e-9)
}

func TestMeanDirectionOfSphereIsNearZero(t *testing.T) {
	hs := unitSphereBoundary()
	assert.InDelta(t, 0.0, MeanDirection(hs).Norm(), 1e-9)
}

func TestCenterOfMassOfSymmetricBoundaryIsOrigin(t *testing.T) {
	hs := unitSphereBoundary()
	assert.InDelta(t, 0.0, CenterOfMass(hs).Norm(), 1e-9)
}

func TestNewExplorationStatusParallelArrays(t *testing.T) {
	hs := unitSphereBoundary()
	status := NewExplorationStatus("MeshExplorer", "ConstantAdherer",
		map[string]float64{"d": 0.05}, map[string]float64{"delta_angle": 0.26}, hs, "")

	assert.Len(t, status.BoundaryPoints, len(hs))
	assert.Len(t, status.BoundarySurface, len(hs))
	assert.Equal(t, hs[0].B.P.Slice(), status.BoundaryPoints[0])
}
