package geometry

// CreateCardinals builds the 2*(N-1) in-surface unit directions for a
// halfspace whose outward normal is n, given a reference N x N basis
// (typically the standard basis or a previously-rotated one).
//
// The first basis column is rotated to align with n via the Span of
// (basis column 0, n); that rotated column is now parallel to n and is
// dropped. Each remaining rotated column is emitted alongside its negation.
// When n is already parallel to the basis's first column (within 1e-10),
// the basis is used unrotated.
func CreateCardinals(n Vector, basis Matrix) []Vector {
	align := basis.Column(0)
	angle := align.Angle(n)

	axes := basis
	if angle > 1e-10 {
		// Span order matters: Span(n, align) rotates align onto n; the
		// reverse would rotate n onto align instead.
		span := NewSpan(n, align)
		rot := span.Rotator(angle)
		axes = rot.MulMatrix(basis)
	}

	cardinals := make([]Vector, 0, 2*(axes.N()-1))
	for i := 1; i < axes.N(); i++ {
		col := axes.Column(i)
		cardinals = append(cardinals, col, col.Scale(-1))
	}
	return cardinals
}
