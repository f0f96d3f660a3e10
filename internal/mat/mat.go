// Package mat provides dense float64 matrix primitives for the SVD
// compression pipeline.
//
// Matrices are stored as a single contiguous row-major buffer with an
// explicit (rows, cols) shape descriptor. There is no per-row pointer
// indirection; values are owned by the computation that allocated them
// and reclaimed by the garbage collector when the stage returns.
package mat

import (
	"errors"
	"math"
)

// ErrShapeMismatch is returned when the inner dimensions of a matrix
// product do not agree.
var ErrShapeMismatch = errors.New("mat: inner dimensions do not agree")

// Dense is a row-major matrix of float64 values.
// Element (i, j) lives at data[i*cols+j].
type Dense struct {
	rows, cols int
	data       []float64
}

// NewDense creates a zero-initialized rows x cols matrix.
// Both dimensions must be positive; callers validate sizes at the
// package boundary before matrices are built.
func NewDense(rows, cols int) *Dense {
	return &Dense{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// Identity creates an n x n identity matrix.
func Identity(n int) *Dense {
	m := NewDense(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.cols }

// At returns the element at (i, j).
func (m *Dense) At(i, j int) float64 {
	return m.data[i*m.cols+j]
}

// Set assigns v to the element at (i, j).
func (m *Dense) Set(i, j int, v float64) {
	m.data[i*m.cols+j] = v
}

// Clone returns a deep copy of the matrix.
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Dense{rows: m.rows, cols: m.cols, data: data}
}

// T returns the transpose as a new matrix.
func (m *Dense) T() *Dense {
	t := NewDense(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			t.data[j*t.cols+i] = m.data[i*m.cols+j]
		}
	}
	return t
}

// Mul returns the matrix product m * other.
// Returns ErrShapeMismatch unless m.Cols() == other.Rows().
func (m *Dense) Mul(other *Dense) (*Dense, error) {
	if m.cols != other.rows {
		return nil, ErrShapeMismatch
	}
	out := NewDense(m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			v := m.data[i*m.cols+k]
			if v == 0 {
				continue
			}
			row := out.data[i*out.cols:]
			orow := other.data[k*other.cols:]
			for j := 0; j < other.cols; j++ {
				row[j] += v * orow[j]
			}
		}
	}
	return out, nil
}

// Scale multiplies every element by f in place.
func (m *Dense) Scale(f float64) {
	for i := range m.data {
		m.data[i] *= f
	}
}

// Norm returns the Frobenius norm of the matrix.
func (m *Dense) Norm() float64 {
	var sum float64
	for _, v := range m.data {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// ATA returns the product m^T * m, the Gram matrix of m's columns.
// The intermediate transpose is released once the product is built.
func (m *Dense) ATA() *Dense {
	t := m.T()
	out, _ := t.Mul(m) // dimensions agree by construction
	return out
}

// AAT returns the product m * m^T, the Gram matrix of m's rows.
func (m *Dense) AAT() *Dense {
	t := m.T()
	out, _ := m.Mul(t) // dimensions agree by construction
	return out
}

// SwapCols exchanges columns i and j in place.
func (m *Dense) SwapCols(i, j int) {
	if i == j {
		return
	}
	for r := 0; r < m.rows; r++ {
		off := r * m.cols
		m.data[off+i], m.data[off+j] = m.data[off+j], m.data[off+i]
	}
}

// ColNorm returns the L2 norm of column j.
func (m *Dense) ColNorm(j int) float64 {
	var sum float64
	for r := 0; r < m.rows; r++ {
		v := m.data[r*m.cols+j]
		sum += v * v
	}
	return math.Sqrt(sum)
}

// ScaleCol multiplies every element of column j by f in place.
func (m *Dense) ScaleCol(j int, f float64) {
	for r := 0; r < m.rows; r++ {
		m.data[r*m.cols+j] *= f
	}
}
