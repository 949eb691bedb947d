// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Exact and tolerance-based comparison of two matrices of the same shape.
//   - Shared by property checks (A·A⁻¹ ≈ I, (Aᵀ)ᵀ == A) and by callers.
//
// Determinism & Performance:
//   - Flat 0..n-1 walk over both buffers; early exit on the first violation.
//   - No allocations for *Dense operands.

package matrix

import "math"

const (
	opEqual    = "Equal"
	opAllClose = "AllClose"
)

// Equal reports whether a and b have the same shape and bitwise-equal
// float64 entries (so NaN != NaN and +0 == -0, as with ==).
//
// Errors: ErrNilMatrix. A shape difference is (false, nil), not an error.
// Complexity: O(r*c).
func Equal(a, b Matrix) (bool, error) {
	da, err := denseOf(a)
	if err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if da.r != db.r || da.c != db.c {
		return false, nil
	}
	for idx, v := range da.data {
		if v != db.data[idx] {
			return false, nil
		}
	}

	return true, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - a and b must be non-nil and have identical shapes (ErrDimensionMismatch).
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances → ErrNaNInf.
//
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := denseOf(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for idx, av := range da.data {
		if !closeTo(av, db.data[idx], rtol, atol) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}

// EqualApprox is AllClose with rtol = 0 and atol = the resolved epsilon
// (WithEpsilon, default DefaultEpsilon).
func EqualApprox(a, b Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)

	return AllClose(a, b, 0, o.eps)
}

// closeTo is the scalar relation behind AllClose.
func closeTo(a, b, rtol, atol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b // same-signed infinities only
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
