// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Kernels wrap
// with fmt.Errorf("<Op>: %w", ErrX); callers still match with errors.Is.
//
// SHAPE FAMILY
// ------------
// ErrShape is the umbrella for every shape precondition. The specific shape
// sentinels wrap it, so errors.Is(err, ErrShape) holds for all of them while
// errors.Is(err, ErrNonSquare) still singles out the exact cause.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> size limit -> numeric (singular, NaN/Inf).

var (
	// ErrShape reports a violated shape precondition of any kind.
	ErrShape = errors.New("matrix: invalid shape")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// (empty grid, empty first row, rows<=0 or cols<=0).
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be > 0", ErrShape)

	// ErrRaggedRows indicates that a source grid is not rectangular.
	ErrRaggedRows = fmt.Errorf("%w: rows have different lengths", ErrShape)

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrShape)

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrShape)

	// ErrUnsupportedSize marks Det/Inverse requested on a square matrix larger than 2x2.
	ErrUnsupportedSize = errors.New("matrix: not implemented for matrices larger than 2x2")

	// ErrSingular is returned by Inverse when the determinant is zero
	// (within the configured singular tolerance).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value was encountered while the
	// finite-only numeric policy was enabled.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
