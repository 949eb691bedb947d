// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Bridge Dense to gonum.org/v1/gonum/mat for callers that need the wider
//     gonum toolbox (LU, QR, SVD, larger inverses) this package does not offer.
//   - ToGonum / FromGonum copy; AsGonum is a zero-copy read-only view.
//
// Notes:
//   - gonum's mat.Matrix.At panics on bad indices and returns a bare float64,
//     so Dense cannot satisfy it directly; gonumView adapts the signature.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
	opAsGonum   = "AsGonum"
)

// gonumView exposes a *Dense as a read-only mat.Matrix without copying.
type gonumView struct {
	d *Dense
}

var _ mat.Matrix = gonumView{}

// Dims implements mat.Matrix.
func (v gonumView) Dims() (r, c int) { return v.d.r, v.d.c }

// At implements mat.Matrix. Out-of-range indices panic with mat.ErrIndexOutOfRange,
// which is the gonum contract.
func (v gonumView) At(i, j int) float64 {
	if i < 0 || i >= v.d.r || j < 0 || j >= v.d.c {
		panic(mat.ErrIndexOutOfRange)
	}

	return v.d.data[i*v.d.c+j]
}

// T implements mat.Matrix with gonum's lazy transpose wrapper.
func (v gonumView) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// AsGonum returns a zero-copy, read-only mat.Matrix view of m.
// Later writes through m.Set are visible through the view.
func AsGonum(m *Dense) (mat.Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAsGonum, err)
	}

	return gonumView{d: m}, nil
}

// ToGonum copies m into a freshly allocated *mat.Dense.
// MAIN DESCRIPTION:
//   - Export for gonum-based pipelines; the result shares nothing with m.
//
// Errors:
//   - ErrNilMatrix, At errors from foreign Matrix implementations.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	dm, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	buf := make([]float64, len(dm.data))
	copy(buf, dm.data)

	return mat.NewDense(dm.r, dm.c, buf), nil
}

// FromGonum copies any gonum matrix into a new Dense.
// MAIN DESCRIPTION:
//   - Import from gonum; *mat.Dense sources are copied row by row honoring
//     their stride, other mat.Matrix values are read through At.
//
// Errors:
//   - ErrNilMatrix (nil src), ErrInvalidDimensions (empty gonum matrix).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	if gd, ok := src.(*mat.Dense); ok && gd == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(opFromGonum, fmt.Errorf("%dx%d: %w", r, c, ErrInvalidDimensions))
	}

	buf := make([]float64, r*c)
	if gd, ok := src.(*mat.Dense); ok {
		raw := gd.RawMatrix()
		for i := 0; i < r; i++ {
			copy(buf[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
		}
	} else {
		var i, j int
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				buf[i*c+j] = src.At(i, j)
			}
		}
	}

	res, err := NewFromData(r, c, buf, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	return res, nil
}
