package geometry

import "fmt"

// Matrix is a dense, row-major N x N matrix used for rotations. It deliberately
// only implements the handful of operations the exploration engine needs
// (identity, outer product, add, scale, matrix-vector and matrix-matrix
// multiply, and column extraction) rather than a general linear-algebra API.
type Matrix struct {
	n    int
	data []float64 // row-major, length n*n
}

// NewIdentity returns the n x n identity matrix.
func NewIdentity(n int) Matrix {
	m := Matrix{n: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// NewMatrix returns an n x n matrix of zeros.
func NewMatrix(n int) Matrix {
	return Matrix{n: n, data: make([]float64, n*n)}
}

// N returns the matrix's dimension.
func (m Matrix) N() int {
	return m.n
}

// At returns element (i, j).
func (m Matrix) At(i, j int) float64 {
	return m.data[i*m.n+j]
}

// Set assigns element (i, j).
func (m Matrix) Set(i, j int, val float64) {
	m.data[i*m.n+j] = val
}

// Outer returns the outer product u * vᵀ as an n x n matrix.
func Outer(u, v Vector) Matrix {
	u.mustMatch(v)
	n := u.Dim()
	m := NewMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, u.At(i)*v.At(j))
		}
	}
	return m
}

// Add returns m + o.
func (m Matrix) Add(o Matrix) Matrix {
	if m.n != o.n {
		panic(fmt.Sprintf("geometry: matrix dimension mismatch (%d vs %d)", m.n, o.n))
	}
	out := NewMatrix(m.n)
	for i := range m.data {
		out.data[i] = m.data[i] + o.data[i]
	}
	return out
}

// Scale returns m scaled by s.
func (m Matrix) Scale(s float64) Matrix {
	out := NewMatrix(m.n)
	for i, x := range m.data {
		out.data[i] = x * s
	}
	return out
}

// MulVector returns m * v.
func (m Matrix) MulVector(v Vector) Vector {
	if m.n != v.Dim() {
		panic(fmt.Sprintf("geometry: matrix/vector dimension mismatch (%d vs %d)", m.n, v.Dim()))
	}
	out := make([]float64, m.n)
	for i := 0; i < m.n; i++ {
		var sum float64
		for j := 0; j < m.n; j++ {
			sum += m.At(i, j) * v.At(j)
		}
		out[i] = sum
	}
	return Vector{data: out}
}

// MulMatrix returns m * o.
func (m Matrix) MulMatrix(o Matrix) Matrix {
	if m.n != o.n {
		panic(fmt.Sprintf("geometry: matrix dimension mismatch (%d vs %d)", m.n, o.n))
	}
	out := NewMatrix(m.n)
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			var sum float64
			for k := 0; k < m.n; k++ {
				sum += m.At(i, k) * o.At(k, j)
			}
			out.Set(i, j, sum)
		}
	}
	return out
}

// Column returns column j as a Vector.
func (m Matrix) Column(j int) Vector {
	out := make([]float64, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = m.At(i, j)
	}
	return Vector{data: out}
}
