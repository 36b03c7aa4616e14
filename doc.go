// Package sembasgo is a boundary-exploration engine for black-box systems
// under test: given a classifier that sorts points into a within-mode or
// out-of-mode region, it finds the boundary between the two and maps it
// out as a cloud of oriented surface points.
//
// The pipeline, top to bottom:
//
//	geometry/   — Vector, Matrix, Domain, Span: the linear algebra layer
//	sample/     — WithinMode, OutOfMode, Halfspace, BoundaryPair
//	classifier/ — the black-box oracle contract
//	adherer/    — per-point strategies that walk from a known boundary
//	            point to its neighbor along a cardinal direction
//	search/     — Monte-Carlo seed acquisition, binary surface search,
//	            opposing-boundary search and chord discovery
//	boundary/   — the spatial index (github.com/dhconnelly/rtreego),
//	            reacquisition, and approximate-classification helpers
//	explorer/   — MeshExplorer: expands a known boundary point by point
//	remote/     — the TCP wire protocol for an out-of-process SUT
//	report/     — exploration status snapshots and YAML config loading
//	sut/        — reference Sphere/Cube/SphereCluster classifiers
//
// cmd/sembas-explore is a small CLI built on top of all of the above.
package sembasgo
