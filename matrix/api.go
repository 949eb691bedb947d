// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for common tasks.
//   - Avoid any logic duplication — each facade delegates to the canonical kernel.
//
// Determinism & Policy:
//   - Facades never change loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense. Complexity: O(r*c).
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// Zeroes is an alias for NewZeros.
func Zeroes(height, width int) (*Dense, error) { return NewZeros(height, width) }

// Identity is an alias for NewIdentity.
func Identity(n int) (*Dense, error) { return NewIdentity(n) }

// CloneMatrix returns a structural clone of m.
// Returns nil for a nil m.
func CloneMatrix(m Matrix) Matrix {
	if ValidateNotNil(m) != nil {
		return nil
	}

	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// IsSquare reports whether m is non-nil and Rows() == Cols().
func IsSquare(m Matrix) bool {
	return ValidateSquareNonNil(m) == nil
}

// ---------- Arithmetic aliases (map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// Negate is an alias for Neg: element-wise −m.
func Negate(m Matrix) (Matrix, error) { return Neg(m) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// ScaleBy is an alias for Scale: α*m.
func ScaleBy(m Matrix, alpha float64) (Matrix, error) { return Scale(m, alpha) }

// Determinant is an alias for Det (1×1 and 2×2 only).
func Determinant(m Matrix) (float64, error) { return Det(m) }

// InverseOf is an alias for Inverse (1×1 and 2×2 only).
func InverseOf(m Matrix, opts ...Option) (Matrix, error) { return Inverse(m, opts...) }
