// Package sample defines the tagged-union Sample type and the Halfspace /
// BoundaryPair data model described by the exploration engine's data model.
package sample

import (
	"fmt"

	"github.com/toazbenj/sembas-go/geometry"
)

// WithinMode wraps a point the classifier reported as exhibiting target
// ("within envelope") behavior. It is a distinct type from OutOfMode so the
// compiler — not a runtime check — prevents passing an out-of-mode point
// where a within-mode point is required (e.g. constructing a Halfspace).
type WithinMode struct {
	P geometry.Vector
}

// OutOfMode wraps a point the classifier reported as exhibiting non-target
// behavior.
type OutOfMode struct {
	P geometry.Vector
}

// Sample is the sealed interface implemented by WithinMode and OutOfMode,
// a closed two-variant classification of a sampled point.
type Sample interface {
	// Point returns the sample's underlying coordinate, regardless of class.
	Point() geometry.Vector
	// IsWithinMode reports whether the sample is WithinMode.
	IsWithinMode() bool
	sealed()
}

func (w WithinMode) Point() geometry.Vector { return w.P }
func (w WithinMode) IsWithinMode() bool     { return true }
func (w WithinMode) sealed()                {}

func (o OutOfMode) Point() geometry.Vector { return o.P }
func (o OutOfMode) IsWithinMode() bool     { return false }
func (o OutOfMode) sealed()                {}

func (w WithinMode) String() string { return fmt.Sprintf("Target(p: %v)", w.P) }
func (o OutOfMode) String() string  { return fmt.Sprintf("Non-Target(p: %v)", o.P) }

// FromClass builds a Sample from a point and a classifier's boolean verdict
// (true => WithinMode).
func FromClass(p geometry.Vector, within bool) Sample {
	if within {
		return WithinMode{P: p}
	}
	return OutOfMode{P: p}
}
