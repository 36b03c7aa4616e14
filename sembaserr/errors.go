// Package sembaserr defines the sentinel error kinds shared across every
// exploration layer: geometry, classification, adherence, search, boundary
// maintenance and the remote protocol. These four kinds are surfaced, not
// produced, by most layers, so they live in one leaf package rather than
// being redeclared per package the way gridgraph/errors.go or
// builder/errors.go declare package-local sentinels.
package sembaserr

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds indicates a point was queried outside the classifier's
	// declared domain.
	ErrOutOfBounds = errors.New("sembas: point sampled out of domain bounds")

	// ErrBoundaryLost indicates an Adherer exceeded its rotational search
	// budget without observing a class change.
	ErrBoundaryLost = errors.New("sembas: adherence exceeded its rotational budget without crossing the boundary")

	// ErrMaxSamplesExceeded indicates a seed-acquisition helper exhausted its
	// iteration cap without converging.
	ErrMaxSamplesExceeded = errors.New("sembas: exceeded maximum sample budget")
)

// InvalidClassifierResponse is a protocol-level error: the remote classifier
// session received a byte, message, or configuration it could not interpret.
// It is fatal to the session it occurred on.
type InvalidClassifierResponse struct {
	Msg string
}

func (e *InvalidClassifierResponse) Error() string {
	return e.Msg
}

// NewInvalidClassifierResponse builds an InvalidClassifierResponse from a
// formatted message.
func NewInvalidClassifierResponse(format string, args ...any) error {
	return &InvalidClassifierResponse{Msg: fmt.Sprintf(format, args...)}
}

// IsInvalidClassifierResponse reports whether err is (or wraps) an
// InvalidClassifierResponse.
func IsInvalidClassifierResponse(err error) bool {
	var target *InvalidClassifierResponse
	return errors.As(err, &target)
}
