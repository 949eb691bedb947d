// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels: element-wise addition,
// subtraction and negation, matrix multiplication, scalar scaling,
// transpose, trace, and the closed-form determinant and inverse for 1×1
// and 2×2 matrices. All functions perform strict fail-fast validation
// before allocating and return a fresh *Dense; operands are never mutated.
//
// Notes:
//   - Every kernel reads its operands through denseOf: *Dense is used as is,
//     any other Matrix is materialized once.
//   - Errors are central validator sentinels wrapped via matrixErrorf(op, err).

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator for dot products and traces.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opNeg       = "Neg"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opTrace     = "Trace"
	opDet       = "Det"
	opInverse   = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// MAIN DESCRIPTION:
//   - Shared body of Add and Sub: validation, allocation, single flat loop.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: resolve both operands to *Dense; allocate result.
//   - Stage 3: flat loop 0..r*c-1.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := denseOf(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch; matches ErrShape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch; matches ErrShape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Neg returns the element-wise negation -m (every entry multiplied by -1).
// Always defined for a non-nil matrix. Complexity: O(r*c).
func Neg(m Matrix) (Matrix, error) {
	dm, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opNeg, err)
	}
	res, err := NewDense(dm.r, dm.c)
	if err != nil {
		return nil, matrixErrorf(opNeg, err)
	}
	for idx, v := range dm.data {
		res.data[idx] = -1 * v
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: ValidateMulCompatible (non-nil, A.Cols == B.Rows).
//   - Stage 2: for each row i of A and column j of B, C[i,j] is the dot
//     product of that row and column, accumulated k = 0..n-1.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch; matches ErrShape).
//
// Determinism:
//   - Fixed i→j→k order; each entry is accumulated left to right.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := denseOf(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k    int
		rowOffsetA int
		dot        float64
	)
	// da.data layout: i*aCols + k; db.data layout: k*bCols + j
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		for j = 0; j < bCols; j++ {
			dot = ZeroSum
			for k = 0; k < aCols; k++ {
				dot += da.data[rowOffsetA+k] * db.data[k*bCols+j]
			}
			res.data[i*bCols+j] = dot
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
//
// Inputs:
//   - m     : non-nil matrix (r×c).
//   - alpha : scalar multiplier (NaN/Inf propagate).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	dm, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(dm.r, dm.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx, v := range dm.data {
		res.data[idx] = v * alpha
	}

	return res, nil
}

// ScalarMul is the commuted form alpha * m of Scale.
func ScalarMul(alpha float64, m Matrix) (Matrix, error) { return Scale(m, alpha) }

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// res[j][i] = m[i][j] for every valid (i, j); defined for any shape.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	dm, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := dm.r, dm.c
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = dm.data[baseSrc+j]
		}
	}

	return res, nil
}

// Trace returns the sum of the diagonal entries of a square matrix.
// Defined for any square size.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n).
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	dm, err := denseOf(m)
	if err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	sum := ZeroSum
	for i := 0; i < dm.r; i++ {
		sum += dm.data[i*dm.c+i]
	}

	return sum, nil
}

// Det returns the determinant of a 1×1 or 2×2 matrix.
// Implementation:
//   - Stage 1: ValidateClosedForm (non-nil → square → 1 ≤ n ≤ 2), in that order.
//   - Stage 2: n=1 → a; n=2 → a*d - c*b for [[a, b], [c, d]].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrUnsupportedSize (n > 2).
//
// Complexity:
//   - Time O(1), Space O(1).
func Det(m Matrix) (float64, error) {
	if err := ValidateClosedForm(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	dm, err := denseOf(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return det(dm), nil
}

// det evaluates the closed form on a validated 1×1 or 2×2 Dense.
func det(dm *Dense) float64 {
	if dm.r == 1 {
		return dm.data[0]
	}
	a, b, c, d := dm.data[0], dm.data[1], dm.data[2], dm.data[3]

	return (a * d) - (c * b)
}

// Inverse returns A⁻¹ for a 1×1 or 2×2 matrix.
// Implementation:
//   - Stage 1: ValidateClosedForm (non-nil → square → 1 ≤ n ≤ 2).
//   - Stage 2: compute det; |det| <= singular tolerance → ErrSingular.
//   - Stage 3: n=1 → [[1/a]]; n=2 → [[d, -b], [-c, a]] * (1/det).
//
// Behavior highlights:
//   - A singular input never yields ±Inf/NaN entries; it fails with ErrSingular.
//   - WithSingularTolerance widens the singular band (default: exact zero only).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrUnsupportedSize, ErrSingular.
//
// Complexity:
//   - Time O(1), Space O(1).
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateClosedForm(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	dm, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	determinant := det(dm)
	if math.Abs(determinant) <= o.singularTol {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det=%g: %w", determinant, ErrSingular))
	}

	res, err := NewDense(dm.r, dm.c)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if dm.r == 1 {
		res.data[0] = 1 / dm.data[0]

		return res, nil
	}

	normalizer := 1 / determinant
	a, b, c, d := dm.data[0], dm.data[1], dm.data[2], dm.data[3]
	res.data[0] = d * normalizer
	res.data[1] = -1 * b * normalizer
	res.data[2] = -1 * c * normalizer
	res.data[3] = a * normalizer

	return res, nil
}
