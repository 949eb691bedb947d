// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/size checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//  - ValidateGrid runs O(rows) over the row lengths, O(rows*cols) with the finite policy.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Square → Size).

package matrix

import "fmt"

// MaxClosedFormSize is the largest square size supported by Det and Inverse.
const MaxClosedFormSize = 2

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
//
// Assumes a and b are not nil (caller must ensure).
// Returns nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Assumes m is not nil. Errors: ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateBinarySameShape: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil: NotNil → Square.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateClosedForm: NotNil → Square → 1 ≤ n ≤ MaxClosedFormSize.
// Guards Det and Inverse, which only have closed forms for 1×1 and 2×2.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions (n == 0),
// ErrUnsupportedSize (n > 2).
// Complexity: O(1).
func ValidateClosedForm(m Matrix) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return validatorErrorf("ValidateClosedForm", err)
	}
	n := m.Rows()
	if n < 1 {
		return validatorErrorf("ValidateClosedForm", ErrInvalidDimensions)
	}
	if n > MaxClosedFormSize {
		return validatorErrorf("ValidateClosedForm", fmt.Errorf("%dx%d: %w", n, n, ErrUnsupportedSize))
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols == b.Rows for Mul.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%dx%d * %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateGrid ensures grid is a non-empty rectangle and, when finiteOnly is
// set, that every entry is finite. Returns the shape on success.
//
// Errors:
//   - ErrInvalidDimensions when the grid or its first row is empty.
//   - ErrRaggedRows naming the first row whose length differs from row 0.
//   - ErrNaNInf naming the first non-finite cell (finiteOnly only).
//
// Complexity: O(rows), or O(rows*cols) when finiteOnly.
func ValidateGrid(grid [][]float64, finiteOnly bool) (rows, cols int, err error) {
	rows = len(grid)
	if rows == 0 || len(grid[0]) == 0 {
		return 0, 0, validatorErrorf("ValidateGrid", ErrInvalidDimensions)
	}
	cols = len(grid[0])
	var i, j int
	for i = 1; i < rows; i++ {
		if len(grid[i]) != cols {
			return 0, 0, validatorErrorf("ValidateGrid",
				fmt.Errorf("row %d has %d entries, want %d: %w", i, len(grid[i]), cols, ErrRaggedRows))
		}
	}
	if finiteOnly {
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				if isNonFinite(grid[i][j]) {
					return 0, 0, validatorErrorf("ValidateGrid",
						fmt.Errorf("cell (%d,%d): %w", i, j, ErrNaNInf))
				}
			}
		}
	}

	return rows, cols, nil
}
