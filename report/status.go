// Package report serializes exploration results to a JSON-compatible
// record, and computes descriptive statistics over a finished boundary
// (curvature, mean direction, spread) that a driver can log or persist
// alongside the raw halfspace cloud. None of these types are contractual
// wire formats — see the exact-layout contract in package remote instead.
package report

import (
	"github.com/toazbenj/sembas-go/sample"
)

// ExplorationStatus is the JSON-serializable snapshot of an Explorer's
// progress: what kind of explorer and adherer produced the boundary, the
// parameters they ran with, and the boundary itself as parallel point/
// normal arrays.
type ExplorationStatus struct {
	ExplorerType       string             `json:"explorer_type"`
	AdhererType        string             `json:"adherer_type"`
	ExplorerParameters map[string]float64 `json:"explorer_parameters"`
	AdhererParameters  map[string]float64 `json:"adherer_parameters"`
	BoundaryPoints     [][]float64        `json:"boundary_points"`
	BoundarySurface    [][]float64        `json:"boundary_surface"`
	Notes              string             `json:"notes,omitempty"`
}

// NewExplorationStatus builds an ExplorationStatus from a finished or
// in-progress boundary.
func NewExplorationStatus(explorerType, adhererType string, explorerParams, adhererParams map[string]float64, boundary []sample.Halfspace, notes string) ExplorationStatus {
	points := make([][]float64, len(boundary))
	surface := make([][]float64, len(boundary))
	for i, hs := range boundary {
		points[i] = hs.B.P.Slice()
		surface[i] = hs.N.Slice()
	}
	return ExplorationStatus{
		ExplorerType:       explorerType,
		AdhererType:        adhererType,
		ExplorerParameters: explorerParams,
		AdhererParameters:  adhererParams,
		BoundaryPoints:     points,
		BoundarySurface:    surface,
		Notes:              notes,
	}
}
